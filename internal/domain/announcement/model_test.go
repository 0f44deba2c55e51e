package announcement_test

import (
	"strings"
	"testing"

	"clubdesk/internal/domain/announcement"
)

// TestAnnouncement_Validate tests validation of Announcement.
func TestAnnouncement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		a       announcement.Announcement
		wantErr error
	}{
		{
			name:    "valid announcement",
			a:       announcement.Announcement{ID: "a1", Content: "Clubs fair is this **Friday** in the cafeteria."},
			wantErr: nil,
		},
		{
			name:    "empty content",
			a:       announcement.Announcement{ID: "a2"},
			wantErr: announcement.ErrEmptyContent,
		},
		{
			name:    "whitespace-only content",
			a:       announcement.Announcement{ID: "a3", Content: "  \n\t "},
			wantErr: announcement.ErrEmptyContent,
		},
		{
			name:    "content too long",
			a:       announcement.Announcement{ID: "a4", Content: strings.Repeat("x", announcement.MaxContentLength+1)},
			wantErr: announcement.ErrContentTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.a.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
