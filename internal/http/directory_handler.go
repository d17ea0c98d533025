package httpapi

import (
	"net/http"

	"docuprint/internal/repository"
)

// DirectoryHandler serves the public location tree the signup form
// selects from.
type DirectoryHandler struct {
	directory repository.DirectoryRepo
}

func NewDirectoryHandler(directory repository.DirectoryRepo) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

func (h *DirectoryHandler) Tree(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, h.directory.Tree())
}
