package visitor

import (
	"strings"

	"github.com/mssola/useragent"

	"urlpro/internal/types"
)

func Classify(userAgent string) types.Device {
	if strings.TrimSpace(userAgent) == "" {
		return types.Device{Type: types.DeviceUnknown, Browser: types.Unknown, OS: types.Unknown}
	}

	ua := useragent.New(userAgent)

	d := types.Device{Type: types.DeviceDesktop, Browser: types.Unknown, OS: types.Unknown}
	if name, _ := ua.Browser(); name != "" {
		d.Browser = name
	}
	if os := ua.OSInfo().Name; os != "" {
		d.OS = os
	}

	switch {
	case ua.Bot():
		d.Type = types.DeviceBot
	case isTablet(ua, userAgent):
		d.Type = types.DeviceTablet
	case ua.Mobile():
		d.Type = types.DeviceMobile
	}
	return d
}

func isTablet(ua *useragent.UserAgent, raw string) bool {
	if strings.Contains(ua.Platform(), "iPad") || strings.Contains(raw, "Tablet") {
		return true
	}
	// Android tablets omit the "Mobile" token.
	return strings.Contains(raw, "Android") && !strings.Contains(raw, "Mobile")
}
