// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lecternhq/lectern/ent/chatmessage"
	"github.com/lecternhq/lectern/ent/curriculum"
	"github.com/lecternhq/lectern/ent/curriculumversion"
	"github.com/lecternhq/lectern/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	curriculumFields := schema.Curriculum{}.Fields()
	_ = curriculumFields
	// curriculumDescIsPublic is the schema descriptor for is_public field.
	curriculumDescIsPublic := curriculumFields[8].Descriptor()
	// curriculum.DefaultIsPublic holds the default value on creation for the is_public field.
	curriculum.DefaultIsPublic = curriculumDescIsPublic.Default.(bool)
	// curriculumDescCreatedAt is the schema descriptor for created_at field.
	curriculumDescCreatedAt := curriculumFields[9].Descriptor()
	// curriculum.DefaultCreatedAt holds the default value on creation for the created_at field.
	curriculum.DefaultCreatedAt = curriculumDescCreatedAt.Default.(func() time.Time)
	// curriculumDescUpdatedAt is the schema descriptor for updated_at field.
	curriculumDescUpdatedAt := curriculumFields[10].Descriptor()
	// curriculum.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	curriculum.DefaultUpdatedAt = curriculumDescUpdatedAt.Default.(func() time.Time)
	curriculumversionFields := schema.CurriculumVersion{}.Fields()
	_ = curriculumversionFields
	// curriculumversionDescCreatedAt is the schema descriptor for created_at field.
	curriculumversionDescCreatedAt := curriculumversionFields[4].Descriptor()
	// curriculumversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	curriculumversion.DefaultCreatedAt = curriculumversionDescCreatedAt.Default.(func() time.Time)
}
