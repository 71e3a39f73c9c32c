// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "curriculum_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_curriculums_chat_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[4]},
				RefColumns: []*schema.Column{CurriculumsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_curriculum_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[4], ChatMessagesColumns[3]},
			},
		},
	}
	// CurriculumsColumns holds the columns for the "curriculums" table.
	CurriculumsColumns = []*schema.Column{
		{Name: "curriculum_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "target_audience", Type: field.TypeString, Nullable: true},
		{Name: "duration", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"online", "offline", "hybrid"}, Default: "online"},
		{Name: "content", Type: field.TypeJSON},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "is_public", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CurriculumsTable holds the schema information for the "curriculums" table.
	CurriculumsTable = &schema.Table{
		Name:       "curriculums",
		Columns:    CurriculumsColumns,
		PrimaryKey: []*schema.Column{CurriculumsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "curriculum_user_id",
				Unique:  false,
				Columns: []*schema.Column{CurriculumsColumns[1]},
			},
			{
				Name:    "curriculum_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{CurriculumsColumns[1], CurriculumsColumns[10]},
			},
			{
				Name:    "curriculum_type",
				Unique:  false,
				Columns: []*schema.Column{CurriculumsColumns[5]},
			},
			{
				Name:    "curriculum_is_public",
				Unique:  false,
				Columns: []*schema.Column{CurriculumsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_public",
				},
			},
		},
	}
	// CurriculumVersionsColumns holds the columns for the "curriculum_versions" table.
	CurriculumVersionsColumns = []*schema.Column{
		{Name: "version_id", Type: field.TypeString, Unique: true},
		{Name: "version_number", Type: field.TypeInt},
		{Name: "content", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "curriculum_id", Type: field.TypeString},
	}
	// CurriculumVersionsTable holds the schema information for the "curriculum_versions" table.
	CurriculumVersionsTable = &schema.Table{
		Name:       "curriculum_versions",
		Columns:    CurriculumVersionsColumns,
		PrimaryKey: []*schema.Column{CurriculumVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "curriculum_versions_curriculums_versions",
				Columns:    []*schema.Column{CurriculumVersionsColumns[4]},
				RefColumns: []*schema.Column{CurriculumsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "curriculumversion_curriculum_id_version_number",
				Unique:  true,
				Columns: []*schema.Column{CurriculumVersionsColumns[4], CurriculumVersionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		CurriculumsTable,
		CurriculumVersionsTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = CurriculumsTable
	CurriculumVersionsTable.ForeignKeys[0].RefTable = CurriculumsTable
}
