package life

import (
	"math"
	"strconv"

	"lifegrid/pkg/core"
)

func (l *Life) Parameters() core.ParameterSnapshot {
	st := l.Statistics()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.Width()),
				intParam("h", "Height", l.Height()),
				stringParam("rule", "Rule", l.Rule()),
				intParam("border", "Border", int(l.border)),
				floatParam("density", "Reset density", l.density),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("iteration", "Iteration", l.iteration),
				intParam("alive", "Alive", l.alive),
				stringParam("alive_rel", "Alive %", percent(st.AliveRel)),
				stringParam("tendency", "Tendency", st.TendencyAbs.String()),
				stringParam("trend", "Trend", st.Trend.String()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (l *Life) ParameterControls() []core.ParameterControl {
	names := make([]string, 0, borderModeCount)
	for _, m := range BorderModes() {
		names = append(names, m.String())
	}
	return []core.ParameterControl{
		{
			Key:     "border",
			Label:   "Border",
			Type:    core.ParamTypeInt,
			Step:    1,
			Min:     0,
			Max:     float64(borderModeCount - 1),
			HasMin:  true,
			HasMax:  true,
			Choices: names,
		},
		{
			Key:    "density",
			Label:  "Density",
			Type:   core.ParamTypeFloat,
			Step:   0.05,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
	}
}

func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "border":
		if value < 0 || value >= int(borderModeCount) {
			return false
		}
		return l.SetBorderMode(BorderMode(value)) == nil
	}
	return false
}

func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		if math.IsNaN(value) {
			return false
		}
		l.SetDensity(value)
		return true
	}
	return false
}

func percent(v Optional[float64]) string {
	f, ok := v.Get()
	if !ok {
		return "unknown"
	}
	return strconv.FormatFloat(f*100, 'f', 1, 64)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
