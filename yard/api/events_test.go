package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/vito/go-sse/sse"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/coordinator"
	"github.com/slipway/slipway/yard/db"
	"github.com/slipway/slipway/yard/db/dbfakes"
	"github.com/slipway/slipway/yard/logstream"
)

var _ = Describe("Events API", func() {
	var (
		fakeClock *fakeclock.FakeClock
		fakeBuild *dbfakes.FakeBuild
		config    logstream.Config
		hub       *logstream.Hub

		stored []yard.LogEvent
	)

	entry := func(seq int, message string) yard.LogEvent {
		return yard.LogEvent{
			BuildID:  40,
			Sequence: seq,
			Kind:     yard.EventOutput,
			Channel:  yard.ChannelStdout,
			Message:  message,
		}
	}

	sourceFor := func(events ...yard.LogEvent) *dbfakes.FakeEventSource {
		source := new(dbfakes.FakeEventSource)
		served := 0
		source.NextStub = func() (yard.LogEvent, error) {
			if served >= len(events) {
				return yard.LogEvent{}, db.ErrEndOfBuildEventStream
			}
			event := events[served]
			served++
			return event, nil
		}
		return source
	}

	BeforeEach(func() {
		fakeClock = fakeclock.NewFakeClock(time.Now())

		stored = []yard.LogEvent{entry(1, "line 1"), entry(2, "line 2")}

		fakeBuild = new(dbfakes.FakeBuild)
		fakeBuild.IDReturns(40)
		fakeBuild.StatusReturns(yard.StatusSuccess)
		fakeBuild.ReloadReturns(true, nil)
		fakeBuild.EventsStub = func(after int) (db.EventSource, error) {
			var remaining []yard.LogEvent
			for _, event := range stored {
				if event.Sequence > after {
					remaining = append(remaining, event)
				}
			}
			return sourceFor(remaining...), nil
		}

		config = logstream.NewConfig()
		hub = logstream.NewHub(logger, config, fakeClock)

		fakeLogs.SubscribeLogsStub = func(ctx context.Context, buildID int, afterSeq int) (*logstream.Subscription, error) {
			return hub.Subscribe(fakeBuild, afterSeq), nil
		}
	})

	Describe("GET /api/v1/builds/:build_id/events", func() {
		get := func(path string, header http.Header) *http.Response {
			req, err := http.NewRequest("GET", server.URL+path, nil)
			Expect(err).NotTo(HaveOccurred())
			for key, values := range header {
				req.Header[key] = values
			}

			response, err := client.Do(req)
			Expect(err).NotTo(HaveOccurred())
			return response
		}

		It("replays the persisted entries, then ends the stream", func() {
			response := get("/api/v1/builds/40/events", nil)
			defer func() { _ = response.Body.Close() }()

			Expect(response.StatusCode).To(Equal(http.StatusOK))
			Expect(response.Header.Get("Content-Type")).To(Equal("text/event-stream; charset=utf-8"))
			Expect(response.Header.Get("X-Accel-Buffering")).To(Equal("no"))

			reader := sse.NewReadCloser(response.Body)

			first, err := reader.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Name).To(Equal("event"))
			Expect(first.ID).To(Equal("1"))

			var firstEntry yard.LogEvent
			Expect(json.Unmarshal(first.Data, &firstEntry)).To(Succeed())
			Expect(firstEntry.Message).To(Equal("line 1"))
			Expect(firstEntry.Channel).To(Equal(yard.ChannelStdout))

			second, err := reader.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal("2"))

			fakeClock.WaitForWatcherAndIncrement(config.StatusPollInterval)

			end, err := reader.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(end.Name).To(Equal("end"))
		})

		It("resumes after the sequence in the Last-Event-ID header", func() {
			response := get("/api/v1/builds/40/events", http.Header{
				"Last-Event-Id": []string{"1"},
			})
			defer func() { _ = response.Body.Close() }()

			Expect(fakeLogs.SubscribeLogsCallCount()).To(Equal(1))
			_, buildID, afterSeq := fakeLogs.SubscribeLogsArgsForCall(0)
			Expect(buildID).To(Equal(40))
			Expect(afterSeq).To(Equal(1))

			reader := sse.NewReadCloser(response.Body)

			first, err := reader.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(first.ID).To(Equal("2"))
		})

		It("resumes after an explicit after parameter", func() {
			response := get("/api/v1/builds/40/events?after=1", nil)
			defer func() { _ = response.Body.Close() }()

			_, _, afterSeq := fakeLogs.SubscribeLogsArgsForCall(0)
			Expect(afterSeq).To(Equal(1))
		})

		It("prefers the header over the parameter on reconnect", func() {
			response := get("/api/v1/builds/40/events?after=9", http.Header{
				"Last-Event-Id": []string{"2"},
			})
			defer func() { _ = response.Body.Close() }()

			_, _, afterSeq := fakeLogs.SubscribeLogsArgsForCall(0)
			Expect(afterSeq).To(Equal(2))
		})

		It("rejects a malformed resume sequence", func() {
			response := get("/api/v1/builds/40/events?after=banana", nil)
			defer func() { _ = response.Body.Close() }()

			Expect(response.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(fakeLogs.SubscribeLogsCallCount()).To(BeZero())
		})

		It("rejects a malformed build id", func() {
			response := get("/api/v1/builds/banana/events", nil)
			defer func() { _ = response.Body.Close() }()

			Expect(response.StatusCode).To(Equal(http.StatusBadRequest))
		})

		Context("when the build does not exist", func() {
			BeforeEach(func() {
				fakeLogs.SubscribeLogsReturns(nil, coordinator.ErrBuildNotFound)
			})

			It("returns 404", func() {
				response := get("/api/v1/builds/40/events", nil)
				defer func() { _ = response.Body.Close() }()

				Expect(response.StatusCode).To(Equal(http.StatusNotFound))
			})
		})

		Context("when attaching to the stream fails", func() {
			BeforeEach(func() {
				fakeLogs.SubscribeLogsReturns(nil, errors.New("conn reset"))
			})

			It("returns 500", func() {
				response := get("/api/v1/builds/40/events", nil)
				defer func() { _ = response.Body.Close() }()

				Expect(response.StatusCode).To(Equal(http.StatusInternalServerError))
			})
		})

		Context("when the replay fails mid-stream", func() {
			BeforeEach(func() {
				fakeBuild.EventsReturns(nil, errors.New("disk broke"))
			})

			It("drops the stream without an end marker", func() {
				response := get("/api/v1/builds/40/events", nil)
				defer func() { _ = response.Body.Close() }()

				Expect(response.StatusCode).To(Equal(http.StatusOK))

				reader := sse.NewReadCloser(response.Body)

				_, err := reader.Next()
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("GET /api/v1/builds/:build_id/events/ws", func() {
		var wsURL string

		BeforeEach(func() {
			wsURL = "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/builds/40/events/ws"
		})

		It("streams entries as JSON messages and closes normally at the end", func() {
			conn, response, err := websocket.DefaultDialer.Dial(wsURL, nil)
			Expect(err).NotTo(HaveOccurred())
			defer func() { _ = conn.Close() }()

			Expect(response.StatusCode).To(Equal(http.StatusSwitchingProtocols))

			var first yard.LogEvent
			Expect(conn.ReadJSON(&first)).To(Succeed())
			Expect(first.Sequence).To(Equal(1))
			Expect(first.Message).To(Equal("line 1"))

			var second yard.LogEvent
			Expect(conn.ReadJSON(&second)).To(Succeed())
			Expect(second.Sequence).To(Equal(2))

			fakeClock.WaitForWatcherAndIncrement(config.StatusPollInterval)

			var discard yard.LogEvent
			err = conn.ReadJSON(&discard)
			Expect(err).To(HaveOccurred())
			Expect(websocket.IsCloseError(err, websocket.CloseNormalClosure)).To(BeTrue())
		})

		It("resumes after an explicit after parameter", func() {
			conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?after=1", nil)
			Expect(err).NotTo(HaveOccurred())
			defer func() { _ = conn.Close() }()

			_, buildID, afterSeq := fakeLogs.SubscribeLogsArgsForCall(0)
			Expect(buildID).To(Equal(40))
			Expect(afterSeq).To(Equal(1))

			var first yard.LogEvent
			Expect(conn.ReadJSON(&first)).To(Succeed())
			Expect(first.Sequence).To(Equal(2))
		})

		Context("when the build does not exist", func() {
			BeforeEach(func() {
				fakeLogs.SubscribeLogsReturns(nil, coordinator.ErrBuildNotFound)
			})

			It("refuses the upgrade with 404", func() {
				_, response, err := websocket.DefaultDialer.Dial(wsURL, nil)
				Expect(err).To(HaveOccurred())
				Expect(response.StatusCode).To(Equal(http.StatusNotFound))
			})
		})
	})
})
