package newbill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     Verdict
	}{
		{"jpg", "image.jpg", Accepted},
		{"jpeg", "photo.jpeg", Accepted},
		{"png", "scan.png", Accepted},
		{"upper case", "IMAGE.JPG", Accepted},
		{"mixed case", "Receipt.PnG", Accepted},
		{"multi dot uses last segment", "facture.2024.03.jpeg", Accepted},
		{"allowed ext in the middle only", "image.jpg.pdf", Rejected},
		{"pdf", "document.pdf", Rejected},
		{"gif", "anim.gif", Rejected},
		{"no extension", "image", Rejected},
		{"trailing dot", "image.", Rejected},
		{"dotfile without base name", ".png", Rejected},
		{"dotfile with extension", ".receipt.png", Accepted},
		{"empty", "", Rejected},
		{"ext lookalike", "image.jpgx", Rejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.fileName))
		})
	}
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "accepted", Accepted.String())
	assert.Equal(t, "rejected", Rejected.String())
}
