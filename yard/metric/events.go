package metric

import (
	"strconv"
	"time"

	"code.cloudfoundry.org/lager/v3"

	"github.com/slipway/slipway/yard"
	"github.com/slipway/slipway/yard/db"
)

func ms(duration time.Duration) float64 {
	return float64(duration) / float64(time.Millisecond)
}

type BuildStarted struct {
	Build db.Build
}

func (event BuildStarted) Emit(logger lager.Logger, monitor *Monitor) {
	monitor.BuildsStarted.Inc()

	monitor.emit(
		logger.Session("build-started"),
		Event{
			Name:  "build started",
			Value: float64(event.Build.ID()),
			Attributes: map[string]string{
				"project":  event.Build.ProjectName(),
				"branch":   event.Build.Branch(),
				"trigger":  string(event.Build.TriggerKind()),
				"build_id": strconv.Itoa(event.Build.ID()),
			},
		},
	)
}

type BuildFinished struct {
	Build db.Build
}

func (event BuildFinished) Emit(logger lager.Logger, monitor *Monitor) {
	monitor.BuildsFinished.Inc()

	switch event.Build.Status() {
	case yard.StatusSuccess:
		monitor.BuildsSucceeded.Inc()
	case yard.StatusFailed:
		monitor.BuildsFailed.Inc()
	case yard.StatusCancelled:
		monitor.BuildsCancelled.Inc()
	case yard.StatusTimedOut:
		monitor.BuildsTimedOut.Inc()
	}

	monitor.emit(
		logger.Session("build-finished"),
		Event{
			Name:  "build finished",
			Value: ms(event.Build.Duration()),
			Attributes: map[string]string{
				"project":      event.Build.ProjectName(),
				"branch":       event.Build.Branch(),
				"trigger":      string(event.Build.TriggerKind()),
				"build_id":     strconv.Itoa(event.Build.ID()),
				"build_status": string(event.Build.Status()),
			},
		},
	)
}

type StatusReport struct {
	Build      db.Build
	StatusCode int
	Duration   time.Duration
	Failed     bool
}

func (event StatusReport) Emit(logger lager.Logger, monitor *Monitor) {
	if event.Failed {
		monitor.FailedStatusReports.Inc()
	} else {
		monitor.StatusReports.Inc()
	}

	state := EventStateOK
	if event.Failed {
		state = EventStateWarning
	}

	monitor.emit(
		logger.Session("status-report"),
		Event{
			Name:  "status report",
			Value: ms(event.Duration),
			State: state,
			Attributes: map[string]string{
				"project":  event.Build.ProjectName(),
				"build_id": strconv.Itoa(event.Build.ID()),
				"status":   strconv.Itoa(event.StatusCode),
			},
		},
	)
}

type HTTPResponseTime struct {
	Route      string
	Path       string
	Method     string
	StatusCode int
	Duration   time.Duration
	TraceID    string
}

func (event HTTPResponseTime) Emit(logger lager.Logger, monitor *Monitor) {
	state := EventStateOK

	if event.Duration > 100*time.Millisecond {
		state = EventStateWarning
	}

	if event.Duration > 1*time.Second {
		state = EventStateCritical
	}

	attributes := map[string]string{
		"route":  event.Route,
		"path":   event.Path,
		"method": event.Method,
		"status": strconv.Itoa(event.StatusCode),
	}
	if event.TraceID != "" {
		attributes["trace_id"] = event.TraceID
	}

	monitor.emit(
		logger.Session("http-response-time"),
		Event{
			Name:       "http response time",
			Value:      ms(event.Duration),
			State:      state,
			Attributes: attributes,
		},
	)
}
