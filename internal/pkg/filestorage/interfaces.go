package filestorage

import "mime/multipart"

// FileStorage defines the interface for uploaded image storage. Stored names
// follow the platform's `<field>_<timestamp><ext>` convention and the returned
// name is what gets persisted on the owning row.
type FileStorage interface {
	// SaveFile stores an uploaded file under the given form field name and
	// returns the stored filename.
	SaveFile(fileHeader *multipart.FileHeader, fieldName string) (string, error)

	// DeleteFile removes a stored file by its stored filename. Deleting a
	// missing file is not an error.
	DeleteFile(filename string) error

	// URL returns the public URL path for a stored filename.
	URL(filename string) string
}
