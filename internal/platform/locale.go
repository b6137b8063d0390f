package platform

import (
	"strings"

	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"

	"resttime/internal/core/render"
)

// twelveHourRegions lists regions where the 12-hour clock is customary.
var twelveHourRegions = map[string]bool{
	"US": true, "CA": true, "AU": true, "NZ": true, "PH": true, "IN": true,
	"PK": true, "BD": true, "EG": true, "SA": true, "CO": true, "MY": true,
}

// DetectClockStyle picks the clock style customary for the host locale,
// falling back to 24-hour when the locale cannot be read.
func DetectClockStyle() render.ClockStyle {
	tag, err := locale.GetLocale()
	if err != nil {
		logrus.WithError(err).Debug("read host locale")
		return render.Clock24h
	}
	return ClockStyleForLocale(tag)
}

// ClockStyleForLocale maps a locale tag such as "en-US" or "en_US.UTF-8" to
// a clock style.
func ClockStyleForLocale(tag string) render.ClockStyle {
	tag, _, _ = strings.Cut(tag, ".")
	tag = strings.ReplaceAll(tag, "_", "-")
	parts := strings.Split(tag, "-")
	if len(parts) < 2 {
		return render.Clock24h
	}
	if twelveHourRegions[strings.ToUpper(parts[len(parts)-1])] {
		return render.Clock12h
	}
	return render.Clock24h
}
