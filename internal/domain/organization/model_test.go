package organization_test

import (
	"reflect"
	"testing"

	"clubdesk/internal/domain/organization"
)

func strPtr(s string) *string { return &s }

// TestOrganization_Validate tests validation of Organization.
func TestOrganization_Validate(t *testing.T) {
	tests := []struct {
		name    string
		org     organization.Organization
		wantErr bool
	}{
		{
			name:    "valid organization",
			org:     organization.Organization{ID: "org-1", Name: "Chess Club", URL: "chess-club"},
			wantErr: false,
		},
		{
			name:    "empty id",
			org:     organization.Organization{Name: "Chess Club"},
			wantErr: true,
		},
		{
			name:    "empty name",
			org:     organization.Organization{ID: "org-1"},
			wantErr: true,
		},
		{
			name:    "whitespace name",
			org:     organization.Organization{ID: "org-1", Name: "   "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.org.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestOrganization_FieldValue tests reading editable fields by name.
func TestOrganization_FieldValue(t *testing.T) {
	org := organization.Organization{
		ID:      "org-1",
		Name:    "Chess Club",
		URL:     "chess-club",
		Mission: "Teach chess to everyone",
	}

	v, ok := org.FieldValue("mission")
	if !ok || v != "Teach chess to everyone" {
		t.Errorf("FieldValue(mission) = %q, %v", v, ok)
	}

	if _, ok := org.FieldValue("contact_email"); ok {
		t.Error("expected contact_email to not be an editable field")
	}
	if _, ok := org.FieldValue("id"); ok {
		t.Error("expected id to not be an editable field")
	}
}

// TestOrganization_SetField tests writing editable fields by name.
func TestOrganization_SetField(t *testing.T) {
	var org organization.Organization
	for _, field := range organization.EditableFields {
		if !org.SetField(field, "v-"+field) {
			t.Errorf("SetField(%s) = false, want true", field)
		}
		got, _ := org.FieldValue(field)
		if got != "v-"+field {
			t.Errorf("FieldValue(%s) = %q after SetField", field, got)
		}
	}
	if org.SetField("created_at", "nope") {
		t.Error("expected SetField to reject non-editable field")
	}
}

// TestEdit_ChangedFields tests that changed fields follow the allow-list and
// its order.
func TestEdit_ChangedFields(t *testing.T) {
	tests := []struct {
		name string
		edit organization.Edit
		want []string
	}{
		{
			name: "no changes",
			edit: organization.Edit{ID: "e1", OrganizationID: "org-1"},
			want: nil,
		},
		{
			name: "single changed field",
			edit: organization.Edit{ID: "7", OrganizationID: "3", OrganizationName: "Chess Club", Name: strPtr("New Chess Club")},
			want: []string{"name"},
		},
		{
			name: "multiple fields in allow-list order",
			edit: organization.Edit{
				ID: "e2", OrganizationID: "org-1",
				Keywords: strPtr("chess-strategy-fun"),
				URL:      strPtr("new-chess"),
				Mission:  strPtr("Updated mission"),
			},
			want: []string{"url", "mission", "keywords"},
		},
		{
			name: "empty string still counts as changed",
			edit: organization.Edit{ID: "e3", OrganizationID: "org-1", Socials: strPtr("")},
			want: []string{"socials"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.edit.ChangedFields()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChangedFields() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestEdit_UpdatedFields tests the approve payload shape: exactly the changed
// fields and their proposed values.
func TestEdit_UpdatedFields(t *testing.T) {
	edit := organization.Edit{
		ID:               "7",
		OrganizationID:   "3",
		OrganizationName: "Chess Club",
		Name:             strPtr("New Chess Club"),
	}

	got := edit.UpdatedFields()
	want := map[string]string{"name": "New Chess Club"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UpdatedFields() = %v, want %v", got, want)
	}
}

// TestEdit_SetField tests that only allow-listed fields can be proposed.
func TestEdit_SetField(t *testing.T) {
	var edit organization.Edit
	if !edit.SetField("meeting_days", strPtr("Tuesday, Thursday")) {
		t.Error("expected SetField(meeting_days) to succeed")
	}
	if edit.SetField("organization_name", strPtr("x")) {
		t.Error("expected SetField to reject organization_name")
	}
	if edit.SetField("id", strPtr("x")) {
		t.Error("expected SetField to reject id")
	}
	if got := edit.ChangedFields(); !reflect.DeepEqual(got, []string{"meeting_days"}) {
		t.Errorf("ChangedFields() = %v, want [meeting_days]", got)
	}
}

// TestEdit_Validate tests validation of Edit.
func TestEdit_Validate(t *testing.T) {
	e := organization.Edit{ID: "e1", OrganizationID: "org-1"}
	if err := e.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	e = organization.Edit{OrganizationID: "org-1"}
	if err := e.Validate(); err == nil {
		t.Error("expected error for missing edit ID")
	}
	e = organization.Edit{ID: "e1"}
	if err := e.Validate(); err == nil {
		t.Error("expected error for missing organization ID")
	}
}
