package media

import "time"

// Media is an uploaded file record. The bytes live on disk under the
// configured upload directory; the store only keeps the metadata.
type Media struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	FileType  string    `json:"file_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
