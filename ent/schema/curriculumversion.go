package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CurriculumVersion holds the schema definition for the CurriculumVersion entity.
// Immutable content snapshots: one row is appended whenever a curriculum's
// content changes (create, update, restore). Restore never rewrites history.
type CurriculumVersion struct {
	ent.Schema
}

// Fields of the CurriculumVersion.
func (CurriculumVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("version_id").
			Unique().
			Immutable(),
		field.String("curriculum_id").
			Immutable(),
		field.Int("version_number").
			Immutable().
			Comment("1-based, monotonically increasing per curriculum"),
		field.JSON("content", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CurriculumVersion.
func (CurriculumVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("curriculum", Curriculum.Type).
			Ref("versions").
			Field("curriculum_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CurriculumVersion.
func (CurriculumVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("curriculum_id", "version_number").
			Unique(),
	}
}
