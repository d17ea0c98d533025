package domain

import "time"

// Print job statuses. The reference workflow does not constrain
// transitions between them; any status may overwrite any other.
const (
	JobQueued    = "queued"
	JobPrinting  = "printing"
	JobReady     = "ready"
	JobCollected = "collected"
	JobCancelled = "cancelled"
)

const (
	ColorModeMono  = "mono"
	ColorModeColor = "color"
)

const (
	PaperA4     = "A4"
	PaperA3     = "A3"
	PaperLetter = "Letter"
)

// MaxPrintFileSize caps the declared upload size (metadata only, no
// file bytes are stored).
const MaxPrintFileSize = 20 * 1024 * 1024

// PrintJob is a resident-submitted print request tracked through its
// status lifecycle by community admins.
type PrintJob struct {
	ID         string    `json:"id" db:"job_id"`
	ResidentID string    `json:"residentId" db:"resident_id"`
	Title      string    `json:"title" db:"title"`
	Pages      int       `json:"pages" db:"pages"`
	Copies     int       `json:"copies" db:"copies"`
	ColorMode  string    `json:"colorMode" db:"color_mode"`
	PaperSize  string    `json:"paperSize" db:"paper_size"`
	Notes      string    `json:"notes,omitempty" db:"notes"`
	FileName   string    `json:"fileName" db:"file_name"`
	FileSize   int64     `json:"fileSize" db:"file_size"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// ValidJobStatus reports whether s is one of the five job statuses.
func ValidJobStatus(s string) bool {
	switch s {
	case JobQueued, JobPrinting, JobReady, JobCollected, JobCancelled:
		return true
	}
	return false
}
