// SPDX-License-Identifier: EPL-2.0

package server

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kalakriti/storymix"
	"github.com/kalakriti/storymix/audio"
	"github.com/kalakriti/storymix/formats/wav"
	"github.com/kalakriti/storymix/internal/audiotest"
)

func TestAudioStory(t *testing.T) {
	t.Parallel()

	m := &fakeMixer{res: &storymix.Result{
		Data:        []byte("ID3mixed"),
		ContentType: "audio/mpeg",
		Format:      "opus",
	}}
	h := newTestServer(testConfig(), m, nil)

	req := multipartRequest(t, "/api/audio-story", []upload{{"audio", "voice.webm", []byte("voice")}}, nil)
	w := serve(h, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `inline; filename="audio-story.mp3"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if f := w.Header().Get(voiceFormatHeader); f != "opus" {
		t.Errorf("%s = %q", voiceFormatHeader, f)
	}
	if w.Body.String() != "ID3mixed" {
		t.Errorf("body = %q", w.Body.String())
	}
	if string(m.got) != "voice" {
		t.Errorf("mixer got %q", m.got)
	}
	if !m.deadline {
		t.Error("mixer context has no deadline")
	}
}

func TestAudioStory_Errors(t *testing.T) {
	t.Parallel()

	probeErr := &audio.ProbeError{Tried: []string{"opus", "wav"}}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"input", &storymix.InputError{Err: probeErr}, http.StatusUnprocessableEntity, "decode failed: tried opus, wav"},
		{"environment", &storymix.EnvironmentError{Op: "load background", Err: storymix.ErrBackgroundMissing}, http.StatusInternalServerError, msgEnvironment},
		{"processing", &storymix.ProcessingError{Op: "encode", Err: errors.New("pipe closed")}, http.StatusInternalServerError, msgProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestServer(testConfig(), &fakeMixer{err: tt.err}, nil)
			req := multipartRequest(t, "/api/audio-story", []upload{{"audio", "v", []byte("x")}}, nil)
			w := serve(h, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if msg := errorMessage(t, w); msg != tt.wantMsg {
				t.Errorf("error = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestAudioStory_BadUploads(t *testing.T) {
	t.Parallel()

	h := newTestServer(testConfig(), &fakeMixer{}, nil)

	missing := multipartRequest(t, "/api/audio-story", []upload{{"image", "x.jpg", []byte("x")}}, nil)
	if w := serve(h, missing); w.Code != http.StatusBadRequest || errorMessage(t, w) != msgMissingAudio {
		t.Errorf("missing field: %d %q", w.Code, w.Body.String())
	}

	notMultipart := httptest.NewRequest(http.MethodPost, "/api/audio-story", strings.NewReader("raw"))
	notMultipart.Header.Set("Content-Type", "application/octet-stream")
	if w := serve(h, notMultipart); w.Code != http.StatusBadRequest {
		t.Errorf("not multipart: %d %q", w.Code, w.Body.String())
	}
}

func TestAudioStory_TooLarge(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.MaxUploadBytes = 64 << 10
	h := newTestServer(cfg, &fakeMixer{}, nil)

	big := bytes.Repeat([]byte{'a'}, 256<<10)
	w := serve(h, multipartRequest(t, "/api/audio-story", []upload{{"audio", "v", big}}, nil))

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", w.Code)
	}
}

func TestAudioStory_PanicRecovered(t *testing.T) {
	t.Parallel()

	h := newTestServer(testConfig(), &fakeMixer{panics: true}, nil)
	w := serve(h, multipartRequest(t, "/api/audio-story", []upload{{"audio", "v", []byte("x")}}, nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if msg := errorMessage(t, w); !strings.HasPrefix(msg, "An internal server error occurred") {
		t.Errorf("error = %q", msg)
	}
}

func TestAudioStory_RealMixer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bgPath := filepath.Join(dir, "music.wav")
	if err := os.WriteFile(bgPath, audiotest.ToneWAV(22050, 2, 5000, 220, 0.5), 0o644); err != nil {
		t.Fatal(err)
	}

	mixer := storymix.New(
		storymix.Config{BackgroundPath: bgPath, AttenuationDB: 12, HeadroomDB: 0.1},
		storymix.WithEncoder(wav.Encoder{}),
		storymix.WithLogger(quietLogger()),
	)
	h := newTestServer(testConfig(), mixer, nil)

	voice := audiotest.ToneWAV(16000, 1, 16000, 440, 0.3)
	w := serve(h, multipartRequest(t, "/api/audio-story", []upload{{"audio", "voice.wav", voice}}, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", w.Code, w.Body.String())
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("RIFF")) {
		t.Error("body is not a WAV file")
	}
	if w.Header().Get(voiceFormatHeader) != "wav" {
		t.Errorf("voice format = %q", w.Header().Get(voiceFormatHeader))
	}

	w = serve(h, multipartRequest(t, "/api/audio-story", []upload{{"audio", "voice.bin", audiotest.Garbage(512)}}, nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("garbage status = %d", w.Code)
	}
	if msg := errorMessage(t, w); msg != "decode failed: tried opus, ogg, wav, aiff, mp3, webm" {
		t.Errorf("error = %q", msg)
	}
}
