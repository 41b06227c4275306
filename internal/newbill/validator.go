package newbill

import "strings"

type Verdict int

const (
	Rejected Verdict = iota
	Accepted
)

func (v Verdict) String() string {
	if v == Accepted {
		return "accepted"
	}
	return "rejected"
}

// AllowedExtensions are the receipt extensions accepted by Classify.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// Classify accepts a file name whose last extension is jpg, jpeg or png,
// in any case. A name made of a leading dot and an extension only, like
// ".png", has no extension.
func Classify(fileName string) Verdict {
	idx := strings.LastIndex(fileName, ".")
	if idx <= 0 || idx == len(fileName)-1 {
		return Rejected
	}
	ext := strings.ToLower(fileName[idx+1:])
	if _, ok := AllowedExtensions[ext]; ok {
		return Accepted
	}
	return Rejected
}
