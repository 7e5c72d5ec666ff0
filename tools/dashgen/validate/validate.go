// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every metric it selects must be known.
package validate

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/cog/variants"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/rental-upsell/tools/dashgen/rules"
)

// Result collects validation findings. Errors make the artifact unusable;
// warnings flag likely mistakes.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Expr parses expr and returns the metric names it selects.
func Expr(expr string) ([]string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names, nil
}

func checkExpr(r *Result, where, expr string, known map[string]bool) {
	names, err := Expr(expr)
	if err != nil {
		r.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}
	if len(names) == 0 {
		r.warnf("%s: expression %q selects no metric", where, expr)
	}
	for _, n := range names {
		if !known[n] {
			r.errorf("%s: unknown metric %q", where, n)
		}
	}
}

// Dashboard validates every Prometheus target of every panel in dash,
// including panels nested in rows.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) *Result {
	r := &Result{}

	var visit func(p *dashboard.Panel)
	visit = func(p *dashboard.Panel) {
		title := "untitled"
		if p.Title != nil {
			title = *p.Title
		}
		if len(p.Targets) == 0 {
			r.warnf("panel %q has no targets", title)
		}
		for _, t := range p.Targets {
			expr, ok := promExpr(t)
			if !ok {
				r.warnf("panel %q has a non-Prometheus target", title)
				continue
			}
			checkExpr(r, fmt.Sprintf("panel %q", title), expr, known)
		}
	}

	for _, p := range dash.Panels {
		switch {
		case p.Panel != nil:
			visit(p.Panel)
		case p.RowPanel != nil:
			for i := range p.RowPanel.Panels {
				visit(&p.RowPanel.Panels[i])
			}
		}
	}
	return r
}

func promExpr(t variants.Dataquery) (string, bool) {
	switch q := t.(type) {
	case *prometheus.Dataquery:
		return q.Expr, true
	case prometheus.Dataquery:
		return q.Expr, true
	default:
		return "", false
	}
}

// Rules validates every rule expression in cr. Recording rules may reference
// each other, so recorded names count as known.
func Rules(cr rules.PrometheusRule, known map[string]bool) *Result {
	r := &Result{}

	all := make(map[string]bool, len(known))
	for k, v := range known {
		all[k] = v
	}
	for _, name := range cr.RecordedNames() {
		all[name] = true
	}

	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Name()
			if name == "" {
				r.errorf("group %q has a rule without record or alert name", g.Name)
			}
			checkExpr(r, fmt.Sprintf("rule %q", name), rule.Expr, all)
		}
	}
	return r
}
