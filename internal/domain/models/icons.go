package models

// IconName identifies an icon the presentation layer knows how to render.
// The set is closed so an unmapped icon is caught at validation time
// instead of silently falling back in the UI.
type IconName string

const (
	IconShield        IconName = "shield"
	IconClock         IconName = "clock"
	IconDollar        IconName = "dollar"
	IconLocation      IconName = "location"
	IconWrenchAlert   IconName = "wrench-alert"
	IconDrain         IconName = "drain"
	IconWaterHeater   IconName = "water-heater"
	IconDropletSearch IconName = "droplet-search"
	IconPipe          IconName = "pipe"
	IconSink          IconName = "sink"
	IconBuilding      IconName = "building"
	IconChecklist     IconName = "checklist"
	IconShieldCheck   IconName = "shield-check"
	IconReceipt       IconName = "receipt"
	IconClockFast     IconName = "clock-fast"
	IconAward         IconName = "award"
	IconUserCheck     IconName = "user-check"
	IconMapPin        IconName = "map-pin"
	IconPhone         IconName = "phone"
	IconTruck         IconName = "truck"
	IconClipboard     IconName = "clipboard"
	IconWrench        IconName = "wrench"
	IconCheckCircle   IconName = "check-circle"
)

var iconNames = map[IconName]struct{}{
	IconShield:        {},
	IconClock:         {},
	IconDollar:        {},
	IconLocation:      {},
	IconWrenchAlert:   {},
	IconDrain:         {},
	IconWaterHeater:   {},
	IconDropletSearch: {},
	IconPipe:          {},
	IconSink:          {},
	IconBuilding:      {},
	IconChecklist:     {},
	IconShieldCheck:   {},
	IconReceipt:       {},
	IconClockFast:     {},
	IconAward:         {},
	IconUserCheck:     {},
	IconMapPin:        {},
	IconPhone:         {},
	IconTruck:         {},
	IconClipboard:     {},
	IconWrench:        {},
	IconCheckCircle:   {},
}

// IsValid reports whether n is one of the known icon names.
func (n IconName) IsValid() bool {
	_, ok := iconNames[n]
	return ok
}
