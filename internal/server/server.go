// Package server publishes the last confirmed date over HTTP, as an
// iCalendar feed that calendar clients can subscribe to and as plain text.
package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/interchange"
)

// document is one published date with its HTTP caching metadata.
type document struct {
	date         calendar.Date
	ics          representation
	text         representation
	lastModified string // RFC1123, as required by HTTP headers
}

// representation is one encoding of the document with its entity tag.
type representation struct {
	body []byte
	etag string
}

func newRepresentation(body []byte) representation {
	hash := sha256.Sum256(body)
	return representation{body: body, etag: fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))}
}

// FeedServer serves the most recently published date.
type FeedServer struct {
	// Published from the UI goroutine, read by HTTP handlers.
	doc   atomic.Pointer[document]
	Port  string
	Clock calendar.Clock
}

// NewFeedServer creates a server bound to localhost:port once started.
func NewFeedServer(port string) *FeedServer {
	return &FeedServer{
		Port:  port,
		Clock: calendar.RealClock{},
	}
}

// Handler returns the routes of the feed.
func (s *FeedServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleCalendar)
	mux.HandleFunc(config.RouteDate, s.handleDate)
	return mux
}

// Start listens and blocks until ctx is cancelled, then shuts down gracefully.
func (s *FeedServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Publish replaces the served date. Readers see either the previous or the
// new document, never a mix.
func (s *FeedServer) Publish(d calendar.Date, summary string) error {
	now := s.Clock.Now()
	ics, err := interchange.EncodeEvent(interchange.Event{Date: d, Summary: summary, Stamp: now})
	if err != nil {
		return err
	}

	doc := &document{
		date:         d,
		ics:          newRepresentation(ics),
		text:         newRepresentation([]byte(d.String() + "\n")),
		lastModified: now.UTC().Format(http.TimeFormat),
	}
	s.doc.Store(doc)

	slog.Info(config.MsgFeedUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyDate, d.String(),
		config.LogKeySizeBytes, len(ics),
		config.LogKeyETag, doc.ics.etag,
	)
	return nil
}

// Published returns the served date, if any.
func (s *FeedServer) Published() (calendar.Date, bool) {
	doc := s.doc.Load()
	if doc == nil {
		return calendar.Date{}, false
	}
	return doc.date, true
}

func (s *FeedServer) handleCalendar(w http.ResponseWriter, r *http.Request) {
	if doc := s.load(w, r); doc != nil {
		s.write(w, r, doc.lastModified, config.MimeTextCalendar, doc.ics)
	}
}

func (s *FeedServer) handleDate(w http.ResponseWriter, r *http.Request) {
	if doc := s.load(w, r); doc != nil {
		s.write(w, r, doc.lastModified, config.MimeTextPlain, doc.text)
	}
}

// load validates the method and returns the current document, or writes the
// error response and returns nil.
func (s *FeedServer) load(w http.ResponseWriter, r *http.Request) *document {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return nil
	}

	doc := s.doc.Load()
	if doc == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return nil
	}
	return doc
}

// write sends rep with caching headers, answering 304 to a matching
// conditional request.
func (s *FeedServer) write(w http.ResponseWriter, r *http.Request, lastModified, contentType string, rep representation) {
	h := w.Header()
	h.Set(config.HeaderContentType, contentType)
	h.Set(config.HeaderXContentType, config.MimeNoSniff)
	h.Set(config.HeaderCacheControl, config.CacheControlPrivate)
	h.Set(config.HeaderETag, rep.etag)
	h.Set(config.HeaderLastModified, lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == rep.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		clientTime, err1 := time.Parse(http.TimeFormat, since)
		serverTime, err2 := time.Parse(http.TimeFormat, lastModified)
		if err1 == nil && err2 == nil && !serverTime.After(clientTime) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(rep.body); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}
