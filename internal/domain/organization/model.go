package organization

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
	MaxURLLength  = 80
)

// Editable field names, in display order. Only these fields may be proposed
// by an organization edit; any other key on an edit record is ignored.
const (
	FieldName                  = "name"
	FieldURL                   = "url"
	FieldSocials               = "socials"
	FieldPicture               = "picture"
	FieldMission               = "mission"
	FieldPurpose               = "purpose"
	FieldBenefit               = "benefit"
	FieldAppointmentProcedures = "appointment_procedures"
	FieldUniqueness            = "uniqueness"
	FieldMeetingSchedule       = "meeting_schedule"
	FieldMeetingDays           = "meeting_days"
	FieldKeywords              = "keywords"
	FieldTags                  = "tags"
	FieldCommitmentLevel       = "commitment_level"
)

// EditableFields is the ordered allow-list of profile fields an edit may change.
var EditableFields = []string{
	FieldName,
	FieldURL,
	FieldSocials,
	FieldPicture,
	FieldMission,
	FieldPurpose,
	FieldBenefit,
	FieldAppointmentProcedures,
	FieldUniqueness,
	FieldMeetingSchedule,
	FieldMeetingDays,
	FieldKeywords,
	FieldTags,
	FieldCommitmentLevel,
}

// Domain errors
var (
	ErrEmptyName           = errors.New("organization name cannot be empty")
	ErrEmptyID             = errors.New("organization ID cannot be empty")
	ErrUnknownField        = errors.New("field is not an editable organization field")
	ErrEmptyEditID         = errors.New("edit ID cannot be empty")
	ErrMissingOrganization = errors.New("edit must reference an organization")
)

// Organization is the live profile of a student club.
type Organization struct {
	ID                    string
	Name                  string
	URL                   string
	Socials               string
	Picture               string
	Mission               string
	Purpose               string
	Benefit               string
	AppointmentProcedures string
	Uniqueness            string
	MeetingSchedule       string
	MeetingDays           string
	Keywords              string
	Tags                  string
	CommitmentLevel       string
	ContactEmail          string // where approval/rejection outcomes are sent
	CreatedAt             time.Time
}

// Validate checks if the Organization has valid data.
// PRE: Organization struct is populated
// POST: Returns nil if valid, error otherwise
func (o *Organization) Validate() error {
	if strings.TrimSpace(o.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(o.Name) == "" {
		return ErrEmptyName
	}
	if len(o.Name) > MaxNameLength {
		return errors.New("organization name cannot exceed 100 characters")
	}
	if len(o.URL) > MaxURLLength {
		return errors.New("organization url cannot exceed 80 characters")
	}
	return nil
}

// FieldValue returns the value of an editable field by its allow-list name.
// PRE: none
// POST: returns the value and true, or "" and false for a non-editable name
func (o *Organization) FieldValue(field string) (string, bool) {
	switch field {
	case FieldName:
		return o.Name, true
	case FieldURL:
		return o.URL, true
	case FieldSocials:
		return o.Socials, true
	case FieldPicture:
		return o.Picture, true
	case FieldMission:
		return o.Mission, true
	case FieldPurpose:
		return o.Purpose, true
	case FieldBenefit:
		return o.Benefit, true
	case FieldAppointmentProcedures:
		return o.AppointmentProcedures, true
	case FieldUniqueness:
		return o.Uniqueness, true
	case FieldMeetingSchedule:
		return o.MeetingSchedule, true
	case FieldMeetingDays:
		return o.MeetingDays, true
	case FieldKeywords:
		return o.Keywords, true
	case FieldTags:
		return o.Tags, true
	case FieldCommitmentLevel:
		return o.CommitmentLevel, true
	}
	return "", false
}

// SetField overwrites an editable field by its allow-list name.
// PRE: none
// POST: returns true if the field was set, false for a non-editable name
func (o *Organization) SetField(field, value string) bool {
	switch field {
	case FieldName:
		o.Name = value
	case FieldURL:
		o.URL = value
	case FieldSocials:
		o.Socials = value
	case FieldPicture:
		o.Picture = value
	case FieldMission:
		o.Mission = value
	case FieldPurpose:
		o.Purpose = value
	case FieldBenefit:
		o.Benefit = value
	case FieldAppointmentProcedures:
		o.AppointmentProcedures = value
	case FieldUniqueness:
		o.Uniqueness = value
	case FieldMeetingSchedule:
		o.MeetingSchedule = value
	case FieldMeetingDays:
		o.MeetingDays = value
	case FieldKeywords:
		o.Keywords = value
	case FieldTags:
		o.Tags = value
	case FieldCommitmentLevel:
		o.CommitmentLevel = value
	default:
		return false
	}
	return true
}

// IsEditableField reports whether a field name is on the allow-list.
// INVARIANT: EditableFields is never mutated
func IsEditableField(field string) bool {
	for _, f := range EditableFields {
		if f == field {
			return true
		}
	}
	return false
}

// Edit is a proposed, not-yet-applied change set to an Organization's profile.
// A field holds a value only if changed; nil means "unchanged".
type Edit struct {
	ID                    string
	OrganizationID        string
	OrganizationName      string
	Name                  *string
	URL                   *string
	Socials               *string
	Picture               *string
	Mission               *string
	Purpose               *string
	Benefit               *string
	AppointmentProcedures *string
	Uniqueness            *string
	MeetingSchedule       *string
	MeetingDays           *string
	Keywords              *string
	Tags                  *string
	CommitmentLevel       *string
	CreatedAt             time.Time
}

// Validate checks if the Edit has valid data.
// PRE: Edit struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Edit) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyEditID
	}
	if strings.TrimSpace(e.OrganizationID) == "" {
		return ErrMissingOrganization
	}
	return nil
}

// FieldValue returns the proposed value pointer for an editable field.
// PRE: none
// POST: returns nil for unchanged fields and for non-editable names
func (e *Edit) FieldValue(field string) *string {
	switch field {
	case FieldName:
		return e.Name
	case FieldURL:
		return e.URL
	case FieldSocials:
		return e.Socials
	case FieldPicture:
		return e.Picture
	case FieldMission:
		return e.Mission
	case FieldPurpose:
		return e.Purpose
	case FieldBenefit:
		return e.Benefit
	case FieldAppointmentProcedures:
		return e.AppointmentProcedures
	case FieldUniqueness:
		return e.Uniqueness
	case FieldMeetingSchedule:
		return e.MeetingSchedule
	case FieldMeetingDays:
		return e.MeetingDays
	case FieldKeywords:
		return e.Keywords
	case FieldTags:
		return e.Tags
	case FieldCommitmentLevel:
		return e.CommitmentLevel
	}
	return nil
}

// SetField stores a proposed value for an editable field.
// PRE: none
// POST: returns true if the field was set, false for a non-editable name
func (e *Edit) SetField(field string, value *string) bool {
	switch field {
	case FieldName:
		e.Name = value
	case FieldURL:
		e.URL = value
	case FieldSocials:
		e.Socials = value
	case FieldPicture:
		e.Picture = value
	case FieldMission:
		e.Mission = value
	case FieldPurpose:
		e.Purpose = value
	case FieldBenefit:
		e.Benefit = value
	case FieldAppointmentProcedures:
		e.AppointmentProcedures = value
	case FieldUniqueness:
		e.Uniqueness = value
	case FieldMeetingSchedule:
		e.MeetingSchedule = value
	case FieldMeetingDays:
		e.MeetingDays = value
	case FieldKeywords:
		e.Keywords = value
	case FieldTags:
		e.Tags = value
	case FieldCommitmentLevel:
		e.CommitmentLevel = value
	default:
		return false
	}
	return true
}

// ChangedFields returns the allow-listed fields holding a proposed value,
// in allow-list order.
// INVARIANT: the result is always a subset of EditableFields
func (e *Edit) ChangedFields() []string {
	var changed []string
	for _, field := range EditableFields {
		if e.FieldValue(field) != nil {
			changed = append(changed, field)
		}
	}
	return changed
}

// UpdatedFields returns the proposed values keyed by field name — exactly the
// changed fields, never unchanged ones.
// POST: keys equal ChangedFields()
func (e *Edit) UpdatedFields() map[string]string {
	updated := make(map[string]string)
	for _, field := range e.ChangedFields() {
		updated[field] = *e.FieldValue(field)
	}
	return updated
}

// HasChanges returns true if the edit proposes at least one field value.
func (e *Edit) HasChanges() bool {
	return len(e.ChangedFields()) > 0
}
