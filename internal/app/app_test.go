package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmehra/stitchbook/internal/config"
	testhelpers "github.com/rmehra/stitchbook/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPServer(t *testing.T) {
	router := gin.New()
	server := newHTTPServer(serverParams{
		Config: &config.Config{RunAddress: "127.0.0.1:9099"},
		Router: router,
	})

	if server.Addr != "127.0.0.1:9099" {
		t.Fatalf("expected configured address, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatal("expected router to be the server handler")
	}
}

func TestRegisterLifecycleAppendsHook(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     testLogger(),
		Server:     &http.Server{Addr: "127.0.0.1:0"},
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected exactly one hook, got %d", len(recorder.Hooks))
	}
	hook := recorder.Hooks[0]
	if hook.OnStart == nil || hook.OnStop == nil {
		t.Fatal("expected both start and stop callbacks")
	}
}

func TestLifecycleStopWithoutStart(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     testLogger(),
		Server:     &http.Server{Addr: "127.0.0.1:0"},
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if err := recorder.Hooks[0].OnStop(context.Background()); err != nil {
		t.Fatalf("stop on idle server must be clean, got %v", err)
	}
}

func TestLifecycleListenFailureTriggersShutdown(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	recorder := &testhelpers.LifecycleRecorder{}
	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     testLogger(),
		Server:     &http.Server{Addr: "256.256.256.256:0"},
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if err := recorder.Hooks[0].OnStart(context.Background()); err != nil {
		t.Fatalf("start must not block on listen failure, got %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(2 * time.Second):
		t.Fatal("expected shutdown after listen failure")
	}
}

func TestLifecycleStartAndGracefulStop(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:0", Handler: gin.New()}
	recorder := &testhelpers.LifecycleRecorder{}
	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     testLogger(),
		Server:     server,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if err := recorder.Hooks[0].OnStart(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	// Give the listener goroutine a moment before shutting down.
	time.Sleep(50 * time.Millisecond)
	if err := recorder.Hooks[0].OnStop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
