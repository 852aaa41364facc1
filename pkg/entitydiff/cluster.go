package entitydiff

import (
	"strconv"
	"strings"
	"time"

	"github.com/yugabyte/ybstats/pkg/model"
	"github.com/yugabyte/ybstats/pkg/version"
)

// DiffMasters classifies master pairs per §4.8, keyed by
// permanent_uuid; modified rows surface role,
// registration address, or cloud/region/zone changes.
func DiffMasters(first, second []model.Master, firstSnapshotTime time.Time) ([]Row[model.Master], error) {
	rows, err := Classify(first, second, func(m model.Master) model.MasterKey { return m.Key() }, firstSnapshotTime, masterFields)
	if err != nil {
		return nil, err
	}
	SortByKey(rows, func(m model.Master) model.MasterKey { return m.Key() }, lessMasterKey)
	return rows, nil
}

func lessMasterKey(a, b model.MasterKey) bool {
	return a.PermanentUUID < b.PermanentUUID
}

func masterFields(first, second model.Master) []FieldChange {
	var changes []FieldChange
	if c, ok := changeIfDiffer("role", first.Role, second.Role); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("registered_as", first.RegisteredAs, second.RegisteredAs); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("host", first.Host, second.Host); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("port", strconv.FormatInt(first.Port, 10), strconv.FormatInt(second.Port, 10)); ok {
		changes = append(changes, c)
	}
	changes = append(changes, cloudRegionZoneFields(first.Cloud, first.Region, first.Zone, second.Cloud, second.Region, second.Zone)...)
	return changes
}

// DiffTabletServers classifies tablet-server pairs per §4.8, keyed by
// permanent_uuid; modified rows surface registration address or
// cloud/region/zone changes.
func DiffTabletServers(first, second []model.TabletServer, firstSnapshotTime time.Time) ([]Row[model.TabletServer], error) {
	rows, err := Classify(first, second, func(t model.TabletServer) string { return t.Key() }, firstSnapshotTime, tabletServerFields)
	if err != nil {
		return nil, err
	}
	SortByKey(rows, func(t model.TabletServer) string { return t.Key() }, func(a, b string) bool { return a < b })
	return rows, nil
}

func tabletServerFields(first, second model.TabletServer) []FieldChange {
	var changes []FieldChange
	if c, ok := changeIfDiffer("host", first.Host, second.Host); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("port", strconv.FormatInt(first.Port, 10), strconv.FormatInt(second.Port, 10)); ok {
		changes = append(changes, c)
	}
	changes = append(changes, cloudRegionZoneFields(first.Cloud, first.Region, first.Zone, second.Cloud, second.Region, second.Zone)...)
	return changes
}

func cloudRegionZoneFields(firstCloud, firstRegion, firstZone, secondCloud, secondRegion, secondZone string) []FieldChange {
	var changes []FieldChange
	if c, ok := changeIfDiffer("cloud", firstCloud, secondCloud); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("region", firstRegion, secondRegion); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("zone", firstZone, secondZone); ok {
		changes = append(changes, c)
	}
	return changes
}

// DiffVersions classifies version-line pairs per §4.8, keyed by
// (hostname_port, key).
func DiffVersions(first, second []model.VersionLine, firstSnapshotTime time.Time) ([]Row[model.VersionLine], error) {
	rows, err := Classify(first, second, func(v model.VersionLine) model.HostnamePortKeyKey { return v.LineKey() }, firstSnapshotTime, versionFields)
	if err != nil {
		return nil, err
	}
	SortByKey(rows, func(v model.VersionLine) model.HostnamePortKeyKey { return v.LineKey() }, lessHostnamePortKeyKey)
	return rows, nil
}

func lessHostnamePortKeyKey(a, b model.HostnamePortKeyKey) bool {
	if a.HostnamePort != b.HostnamePort {
		return a.HostnamePort < b.HostnamePort
	}
	return a.Key < b.Key
}

// versionNumberKey is the /api/v1/version field holding the semver string
// (e.g. "2.21.1.0"); its changes are annotated upgrade/downgrade using
// pkg/version rather than reported as an opaque string diff.
const versionNumberKey = "version_number"

func versionFields(first, second model.VersionLine) []FieldChange {
	c, ok := changeIfDiffer("value", first.Value, second.Value)
	if !ok {
		return nil
	}
	if first.Key == versionNumberKey {
		c.Field = annotatedVersionField(first.Value, second.Value)
	}
	return []FieldChange{c}
}

func annotatedVersionField(first, second string) string {
	// pkg/version accepts at most three components, so the fourth (build)
	// component of a YugabyteDB version number such as "2.21.1.0" is
	// dropped before parsing; a change in that component alone is reported
	// as a plain "value" change.
	majorMinorPatch := func(s string) string {
		if parts := strings.SplitN(s, ".", 4); len(parts) == 4 {
			return strings.Join(parts[:3], ".")
		}
		return s
	}
	firstVer, err := version.ParseVersion(majorMinorPatch(first))
	if err != nil {
		return "value"
	}
	secondVer, err := version.ParseVersion(majorMinorPatch(second))
	if err != nil {
		return "value"
	}
	switch {
	case secondVer.IsNewer(firstVer):
		return "value (upgrade)"
	case firstVer.IsNewer(secondVer):
		return "value (downgrade)"
	default:
		return "value"
	}
}

// DiffVarz classifies gflag-line pairs per §4.8, keyed by
// (hostname_port, key).
func DiffVarz(first, second []model.VarzLine, firstSnapshotTime time.Time) ([]Row[model.VarzLine], error) {
	rows, err := Classify(first, second, func(v model.VarzLine) model.HostnamePortKeyKey { return v.LineKey() }, firstSnapshotTime, varzFields)
	if err != nil {
		return nil, err
	}
	SortByKey(rows, func(v model.VarzLine) model.HostnamePortKeyKey { return v.LineKey() }, lessHostnamePortKeyKey)
	return rows, nil
}

func varzFields(first, second model.VarzLine) []FieldChange {
	if c, ok := changeIfDiffer("value", first.Value, second.Value); ok {
		return []FieldChange{c}
	}
	return nil
}

// DiffHealth classifies health-check fault pairs per §4.8, keyed by
// (category, subject_id). Health items have no mutable fields beyond
// presence, so a present-in-both pair is always unchanged.
func DiffHealth(first, second []model.HealthItem, firstSnapshotTime time.Time) ([]Row[model.HealthItem], error) {
	rows, err := Classify(first, second, func(h model.HealthItem) model.HealthKey { return h.Key() }, firstSnapshotTime,
		func(model.HealthItem, model.HealthItem) []FieldChange { return nil })
	if err != nil {
		return nil, err
	}
	SortByKey(rows, func(h model.HealthItem) model.HealthKey { return h.Key() }, lessHealthKey)
	return rows, nil
}

func lessHealthKey(a, b model.HealthKey) bool {
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	return a.SubjectID < b.SubjectID
}
