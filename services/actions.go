package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

const (
	ActionAsk         = "ask"
	ActionAQIChart    = "aqi_chart"
	ActionEnergyChart = "energy_chart"
	ActionReport      = "report"
)

var ErrUnknownAction = errors.New("unknown action")

// Action handles one UI trigger. Input is ignored by actions that take none.
type Action func(ctx context.Context, input string) (any, error)

// ActionTable maps UI action names to their handlers.
type ActionTable map[string]Action

// NewActionTable wires every button on the UI to the service behind it.
func NewActionTable(assistant AssistantService, dashboard DashboardService, reports ReportService) ActionTable {
	return ActionTable{
		ActionAsk: func(ctx context.Context, input string) (any, error) {
			return assistant.Ask(ctx, input)
		},
		ActionAQIChart: func(context.Context, string) (any, error) {
			return dashboard.AQIChart(), nil
		},
		ActionEnergyChart: func(context.Context, string) (any, error) {
			return dashboard.EnergyChart(), nil
		},
		ActionReport: func(context.Context, string) (any, error) {
			return reports.Report(), nil
		},
	}
}

// Dispatch runs the named action.
func (t ActionTable) Dispatch(ctx context.Context, name, input string) (any, error) {
	action, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return action(ctx, input)
}

// Names returns the registered action names in sorted order.
func (t ActionTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
