package deployment

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	projectNamePrefix = "html"
	randomIDLength    = 6

	// IndexFile is the name the uploaded HTML is published under
	IndexFile = "index.html"
)

// ProjectName is the generated label a deployment is created under.
// Format: html-<6 base36 chars>-<unix millis>. Uniqueness is best effort.
type ProjectName struct {
	value string
}

// NewProjectName generates a fresh project name for the given instant
func NewProjectName(now time.Time) ProjectName {
	return ProjectName{
		value: fmt.Sprintf("%s-%s-%d", projectNamePrefix, randomBase36(randomIDLength), now.UnixMilli()),
	}
}

func (n ProjectName) String() string {
	return n.value
}

func (n ProjectName) Equals(other ProjectName) bool {
	return n.value == other.value
}

// randomBase36 returns n lowercase base36 characters drawn from a v4 UUID
func randomBase36(n int) string {
	id := uuid.New()
	s := strconv.FormatUint(binary.BigEndian.Uint64(id[8:]), 36)
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s[len(s)-n:]
}

// HTMLContent is the page body uploaded as IndexFile.
// The content is passed through untouched; callers send it base64-encoded.
type HTMLContent struct {
	value string
}

// NewHTMLContent creates HTMLContent, rejecting only empty input.
// Whitespace is content and is forwarded as is.
func NewHTMLContent(content string) (HTMLContent, error) {
	if content == "" {
		return HTMLContent{}, ErrNoHTML
	}
	return HTMLContent{value: content}, nil
}

func (h HTMLContent) String() string {
	return h.value
}

// Len returns the content size in bytes
func (h HTMLContent) Len() int {
	return len(h.value)
}

// Target is the environment a deployment is published to
type Target string

const (
	TargetProduction Target = "production"
)

func (t Target) String() string {
	return string(t)
}

// DeploymentStatus represents the status of a deployment
type DeploymentStatus string

const (
	StatusPending  DeploymentStatus = "PENDING"
	StatusDeployed DeploymentStatus = "DEPLOYED"
	StatusFailed   DeploymentStatus = "FAILED"
)

func (s DeploymentStatus) String() string {
	return string(s)
}
