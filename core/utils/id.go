package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Meeting codes avoid lookalike characters so they survive being read aloud.
const meetingCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz"

// GenerateMeetingCode returns a short public handle for a meeting.
func GenerateMeetingCode() string {
	id, err := gonanoid.Generate(meetingCodeAlphabet, 8)
	if err != nil {
		return ""
	}
	return id
}
