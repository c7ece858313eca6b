package hardware

import (
	"context"

	"github.com/metal-toolbox/hwmanager/internal/identity"
	"github.com/metal-toolbox/hwmanager/internal/metrics"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/exp/slices"
)

const (
	pkgName = "internal/hardware"
)

var (
	ErrNoManagers       = errors.New("no hardware manager supports this machine")
	ErrEvaluateSupport  = errors.New("error evaluating hardware support")
	ErrDuplicateManager = errors.New("duplicate hardware manager")
)

// Selected is a hardware manager with the support it reported.
type Selected struct {
	Manager Manager
	Support model.HardwareSupport
}

// Evaluation is the support a hardware manager reported, Err is set when the
// evaluation failed and Support is then HardwareSupportNone.
type Evaluation struct {
	Manager Manager
	Support model.HardwareSupport
	Err     error
}

// Evaluate returns the hardware support each manager reports, in the order the
// managers were given.
//
// A manager failing to evaluate its support is reported with HardwareSupportNone,
// unless strict is set in which case the error is returned.
func Evaluate(ctx context.Context, managers []Manager, strict bool, logger *logrus.Logger) ([]Evaluation, error) {
	ctx, span := otel.Tracer(pkgName).Start(ctx, "hardware.Evaluate")
	defer span.End()

	evaluations := make([]Evaluation, 0, len(managers))
	seen := make(map[string]bool, len(managers))

	for _, m := range managers {
		if seen[m.Name()] {
			return nil, errors.Wrap(ErrDuplicateManager, m.Name())
		}

		seen[m.Name()] = true

		le := logger.WithFields(logrus.Fields{"manager": m.Name(), "version": m.Version()})

		support, err := m.EvaluateSupport(ctx)
		if err != nil {
			var readErr *identity.ReadError
			if errors.As(err, &readErr) {
				metrics.IdentityReadErrorCount.WithLabelValues(m.Name()).Inc()
			}

			if strict {
				return nil, errors.Wrap(ErrEvaluateSupport, m.Name()+": "+err.Error())
			}

			le.WithField("err", err.Error()).Warn("hardware support evaluation failed, manager excluded")

			support = model.HardwareSupportNone
		}

		metrics.SupportEvaluationCounter.WithLabelValues(m.Name(), support.String()).Inc()

		le.WithField("support", support.String()).Debug("hardware support evaluated")

		evaluations = append(evaluations, Evaluation{Manager: m, Support: support, Err: err})
	}

	return evaluations, nil
}

// Select evaluates the hardware support of each manager and returns the managers
// that support the machine, highest support first. Managers reporting the same
// support keep the order they were given in.
//
// A manager failing to evaluate its support is excluded, unless strict is set
// in which case the error is returned.
func Select(ctx context.Context, managers []Manager, strict bool, logger *logrus.Logger) ([]Selected, error) {
	evaluations, err := Evaluate(ctx, managers, strict, logger)
	if err != nil {
		return nil, err
	}

	return Ordered(ctx, evaluations, logger)
}

// Ordered drops the evaluations reporting no support and returns the rest
// highest support first, ErrNoManagers is returned when none remain.
func Ordered(ctx context.Context, evaluations []Evaluation, logger *logrus.Logger) ([]Selected, error) {
	_, span := otel.Tracer(pkgName).Start(ctx, "hardware.Select")
	defer span.End()

	selected := make([]Selected, 0, len(evaluations))

	for _, e := range evaluations {
		if e.Support == model.HardwareSupportNone {
			continue
		}

		selected = append(selected, Selected{Manager: e.Manager, Support: e.Support})
	}

	if len(selected) == 0 {
		return nil, ErrNoManagers
	}

	slices.SortStableFunc(selected, func(a, b Selected) int {
		return int(b.Support) - int(a.Support)
	})

	names := make([]string, 0, len(selected))
	for _, s := range selected {
		names = append(names, s.Manager.Name())
	}

	span.SetAttributes(attribute.StringSlice("managers", names))

	logger.WithField("managers", names).Info("hardware managers selected")

	return selected, nil
}
