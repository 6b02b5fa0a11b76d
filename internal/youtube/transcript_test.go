package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTrackList = `<?xml version="1.0" encoding="utf-8"?>
<transcript_list docid="123">
  <track id="0" name="" lang_code="en" lang_original="English"/>
  <track id="1" name="" lang_code="de" lang_original="Deutsch"/>
</transcript_list>`

const testTranscript = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="2.5">Hello and welcome</text>
  <text start="2.5" dur="3.1">to this video about Go &amp; concurrency</text>
  <text start="5.6" dur="1.0"> </text>
  <text start="6.6" dur="2.0">thanks for watching</text>
</transcript>`

// captionServer serves a canned track list and transcript.
func captionServer(t *testing.T, trackList, transcript string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/timedtext", r.URL.Path)
		if r.URL.Query().Get("type") == "list" {
			_, _ = w.Write([]byte(trackList))
			return
		}
		_, _ = w.Write([]byte(transcript))
	}))
}

func TestTranscript_JoinsFragmentsWithSpaces(t *testing.T) {
	srv := captionServer(t, testTrackList, testTranscript)
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	got, err := c.Transcript(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Hello and welcome to this video about Go & concurrency thanks for watching", got)
}

func TestTranscript_PrefersConfiguredLanguage(t *testing.T) {
	var gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") == "list" {
			_, _ = w.Write([]byte(testTrackList))
			return
		}
		gotLang = r.URL.Query().Get("lang")
		_, _ = w.Write([]byte(testTranscript))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithLanguage("de"))
	_, err := c.Transcript(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "de", gotLang)
}

func TestTranscript_FallsBackToFirstTrack(t *testing.T) {
	var gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") == "list" {
			_, _ = w.Write([]byte(testTrackList))
			return
		}
		gotLang = r.URL.Query().Get("lang")
		_, _ = w.Write([]byte(testTranscript))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithLanguage("fr"))
	_, err := c.Transcript(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "en", gotLang)
}

func TestTranscript_EmptyTrackListIsNoCaptions(t *testing.T) {
	srv := captionServer(t, "", testTranscript)
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Transcript(context.Background(), "dQw4w9WgXcQ")

	var noCaptions *ErrNoCaptions
	require.ErrorAs(t, err, &noCaptions)
	assert.Equal(t, "dQw4w9WgXcQ", noCaptions.VideoID)
}

func TestTranscript_NotFoundIsNoCaptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Transcript(context.Background(), "dQw4w9WgXcQ")

	var noCaptions *ErrNoCaptions
	require.ErrorAs(t, err, &noCaptions)
}

func TestTranscript_ServerErrorIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Transcript(context.Background(), "dQw4w9WgXcQ")

	var fetchErr *ErrCaptionFetch
	require.ErrorAs(t, err, &fetchErr)
}

func TestTranscript_UnreachableHostIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Transcript(context.Background(), "dQw4w9WgXcQ")

	var fetchErr *ErrCaptionFetch
	require.ErrorAs(t, err, &fetchErr)
}

func TestTranscript_MalformedXMLIsParseError(t *testing.T) {
	srv := captionServer(t, "<transcript_list><track", "")
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Transcript(context.Background(), "dQw4w9WgXcQ")

	var parseErr *ErrCaptionParse
	require.ErrorAs(t, err, &parseErr)
}

func TestTranscript_EmptyTranscriptIsNoCaptions(t *testing.T) {
	srv := captionServer(t, testTrackList, `<transcript></transcript>`)
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Transcript(context.Background(), "dQw4w9WgXcQ")

	var noCaptions *ErrNoCaptions
	require.ErrorAs(t, err, &noCaptions)
}

func TestTranscript_ContextCancellation(t *testing.T) {
	srv := captionServer(t, testTrackList, testTranscript)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Transcript(ctx, "dQw4w9WgXcQ")
	require.Error(t, err)

	var fetchErr *ErrCaptionFetch
	require.ErrorAs(t, err, &fetchErr)
	assert.True(t, errors.Is(err, context.Canceled))
}
