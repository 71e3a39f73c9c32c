package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Curriculum holds the schema definition for the Curriculum entity.
// One row per authored curriculum, owned by a single user.
type Curriculum struct {
	ent.Schema
}

// Fields of the Curriculum.
func (Curriculum) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("curriculum_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Owner identity from the auth provider"),
		field.String("title"),
		field.String("target_audience").
			Optional().
			Nillable(),
		field.String("duration").
			Optional().
			Nillable().
			Comment("Free-form course length, e.g. '8 weeks'"),
		field.Enum("type").
			Values("online", "offline", "hybrid").
			Default("online"),
		field.JSON("content", map[string]interface{}{}).
			Comment("Structured body: summary, objectives, chapters, resources"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Difficulty, prerequisites, tools, language"),
		field.Bool("is_public").
			Default(false).
			Comment("Shared read-only link enabled"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the Curriculum.
func (Curriculum) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("versions", CurriculumVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Curriculum.
func (Curriculum) Indexes() []ent.Index {
	return []ent.Index{
		// Owner listing
		index.Fields("user_id"),
		index.Fields("user_id", "updated_at"),
		// Filters
		index.Fields("type"),
		// Shared link lookup
		index.Fields("is_public").
			Annotations(entsql.IndexWhere("is_public")),
	}
}
