package organization

import "clubdesk/internal/domain/form"

// FieldRequirements maps each editable field to the text-field rules its
// value must satisfy before a proposed edit is accepted. Fields absent from
// the map accept any value.
var FieldRequirements = map[string]form.Requirements{
	FieldName:        {MaxChar: MaxNameLength},
	FieldURL:         {MaxChar: MaxURLLength, DisableSpaces: true},
	FieldKeywords:    {OnlyAlpha: true},
	FieldTags:        {OnlyAlpha: true},
	FieldMeetingDays: {OnlyAlpha: true},
	FieldMission:     {MinWords: 3},
	FieldPurpose:     {MinWords: 3},
}

// CheckFieldValue reports whether a proposed value satisfies the field's
// requirements. Fields without requirements always pass.
// PRE: none
// POST: returns true when the value may be stored on an edit
func CheckFieldValue(field, value string) bool {
	req, ok := FieldRequirements[field]
	if !ok {
		return true
	}
	return req.Conforms(value)
}
