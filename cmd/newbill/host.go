package main

import (
	"fmt"
	"io"

	"billed/internal/newbill"
)

type staticForm newbill.BillFields

func (f staticForm) FieldValues() newbill.BillFields {
	return newbill.BillFields(f)
}

// stderrIndicator prints the file type warning instead of unhiding a node.
type stderrIndicator struct {
	w       io.Writer
	visible bool
}

func (s *stderrIndicator) Show() {
	s.visible = true
	fmt.Fprintln(s.w, "Seuls les fichiers jpg, jpeg et png sont acceptés")
}

func (s *stderrIndicator) Hide() {
	s.visible = false
}

type fileInput struct {
	path string
}

func (f *fileInput) Clear() {
	f.path = ""
}
