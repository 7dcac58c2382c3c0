package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/spf13/pflag"
)

// setKindValue parses --kind into a domain.SetKind.
type setKindValue struct {
	kind *domain.SetKind
}

var _ pflag.Value = (*setKindValue)(nil)

func newSetKindValue(p *domain.SetKind, def domain.SetKind) *setKindValue {
	*p = def
	return &setKindValue{kind: p}
}

func (v *setKindValue) String() string {
	if v.kind == nil {
		return ""
	}
	return string(*v.kind)
}

func (v *setKindValue) Set(s string) error {
	k, err := domain.ParseSetKind(s)
	if err != nil {
		return err
	}
	*v.kind = k
	return nil
}

func (v *setKindValue) Type() string { return "kind" }

// monthValue parses YYYY-MM.
type monthValue struct {
	t *time.Time
}

var _ pflag.Value = (*monthValue)(nil)

func newMonthValue(p *time.Time, def time.Time) *monthValue {
	*p = time.Date(def.Year(), def.Month(), 1, 0, 0, 0, 0, time.UTC)
	return &monthValue{t: p}
}

func (v *monthValue) String() string {
	if v.t == nil || v.t.IsZero() {
		return ""
	}
	return v.t.Format("2006-01")
}

func (v *monthValue) Set(s string) error {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM format")
	}
	*v.t = t
	return nil
}

func (v *monthValue) Type() string { return "month" }
