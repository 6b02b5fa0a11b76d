package youtube

import "fmt"

// ErrNoCaptions indicates the video has no caption track to fetch.
// Covers disabled captions and unknown video IDs alike; YouTube does
// not distinguish the two on the timedtext endpoint.
type ErrNoCaptions struct {
	VideoID string
}

func (e *ErrNoCaptions) Error() string {
	return fmt.Sprintf("no captions available for video %q", e.VideoID)
}

// ErrCaptionFetch indicates a transport or HTTP failure while talking
// to the captions endpoint.
type ErrCaptionFetch struct {
	VideoID string
	Err     error
}

func (e *ErrCaptionFetch) Error() string {
	return fmt.Sprintf("fetch captions for video %q: %v", e.VideoID, e.Err)
}

func (e *ErrCaptionFetch) Unwrap() error { return e.Err }

// ErrCaptionParse indicates the captions endpoint returned a payload
// that could not be decoded.
type ErrCaptionParse struct {
	VideoID string
	Err     error
}

func (e *ErrCaptionParse) Error() string {
	return fmt.Sprintf("parse captions for video %q: %v", e.VideoID, e.Err)
}

func (e *ErrCaptionParse) Unwrap() error { return e.Err }
