package report_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/slipway/slipway/yard/report"
)

type recordedRequest struct {
	Method      string
	Path        string
	Auth        string
	ContentType string
	Body        []byte
}

var _ = Describe("HTTPPoster", func() {
	var (
		logger *lagertest.TestLogger
		server *httptest.Server

		requests     chan recordedRequest
		responseCode int

		config report.Config
		poster *report.HTTPPoster
		status report.CommitStatus
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("poster-test")

		requests = make(chan recordedRequest, 4)
		responseCode = http.StatusCreated

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			requests <- recordedRequest{
				Method:      r.Method,
				Path:        r.URL.Path,
				Auth:        r.Header.Get("Authorization"),
				ContentType: r.Header.Get("Content-Type"),
				Body:        body,
			}
			w.WriteHeader(responseCode)
		}))

		config = report.NewConfig()
		config.Endpoint = server.URL + "/repos/{repo}/statuses/{sha}"
		config.Token = "grault"
		config.Timeout = time.Second

		status = report.CommitStatus{
			Repo:        "slipway/widgets",
			SHA:         "abc123",
			State:       report.CommitStateSuccess,
			TargetURL:   "https://ci.example.com/builds/40",
			Description: "build passed",
		}
	})

	JustBeforeEach(func() {
		poster = report.NewHTTPPoster(logger, config)
	})

	AfterEach(func() {
		server.Close()
	})

	It("posts the status where the template points, with the bearer token", func() {
		code, err := poster.Post(context.Background(), status)
		Expect(err).ToNot(HaveOccurred())
		Expect(code).To(Equal(http.StatusCreated))

		var received recordedRequest
		Expect(requests).To(Receive(&received))
		Expect(received.Method).To(Equal("POST"))
		Expect(received.Path).To(Equal("/repos/slipway/widgets/statuses/abc123"))
		Expect(received.Auth).To(Equal("Bearer grault"))
		Expect(received.ContentType).To(Equal("application/json"))
		Expect(received.Body).To(MatchJSON(`{
			"state": "success",
			"target_url": "https://ci.example.com/builds/40",
			"description": "build passed",
			"context": "ci/slipway"
		}`))
	})

	Context("when no token is configured", func() {
		BeforeEach(func() {
			config.Token = ""
		})

		It("posts without an authorization header", func() {
			_, err := poster.Post(context.Background(), status)
			Expect(err).ToNot(HaveOccurred())

			var received recordedRequest
			Expect(requests).To(Receive(&received))
			Expect(received.Auth).To(BeEmpty())
		})
	})

	Context("when the provider rejects the status", func() {
		BeforeEach(func() {
			responseCode = http.StatusUnprocessableEntity
		})

		It("hands back the provider's verdict", func() {
			code, err := poster.Post(context.Background(), status)
			Expect(code).To(Equal(http.StatusUnprocessableEntity))
			Expect(err).To(MatchError(ContainSubstring("422")))
		})
	})

	Context("when the provider is unreachable", func() {
		BeforeEach(func() {
			server.Close()
			config.Timeout = 50 * time.Millisecond
		})

		It("gives up once the retry budget is spent", func() {
			code, err := poster.Post(context.Background(), status)
			Expect(code).To(BeZero())
			Expect(err).To(HaveOccurred())
		})
	})
})
