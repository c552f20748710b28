package filestorage

import "mime/multipart"

// Storage abstracts saving and deleting uploaded files.
type Storage interface {
	SaveFile(fileHeader *multipart.FileHeader) (string, error)
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)
	DeleteFile(filePath string) error
}
