// roster/store/mapper.go
package store

import (
	"math"

	"github.com/tabajaradev/static-roster/shared/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Stored field keys. These match the legacy Datastore layout exactly and must
// not change while existing databases are in use.
const (
	fieldName            = "Name"
	fieldStaticGUID      = "StaticGUID"
	fieldCreationDate    = "CreationDate"
	fieldLastUpdatedDate = "LastUpdatedDate"
)

var slotFields = []struct {
	key string
	get func(*models.StaticTeammate) *int
}{
	{"EarsValue", func(t *models.StaticTeammate) *int { return &t.EarsValue }},
	{"NeckValue", func(t *models.StaticTeammate) *int { return &t.NeckValue }},
	{"WristsValue", func(t *models.StaticTeammate) *int { return &t.WristsValue }},
	{"RingValue", func(t *models.StaticTeammate) *int { return &t.RingValue }},
	{"WeaponValue", func(t *models.StaticTeammate) *int { return &t.WeaponValue }},
	{"HeadValue", func(t *models.StaticTeammate) *int { return &t.HeadValue }},
	{"BodyValue", func(t *models.StaticTeammate) *int { return &t.BodyValue }},
	{"HandsValue", func(t *models.StaticTeammate) *int { return &t.HandsValue }},
	{"LegsValue", func(t *models.StaticTeammate) *int { return &t.LegsValue }},
	{"FeetValue", func(t *models.StaticTeammate) *int { return &t.FeetValue }},
	{"WeaponTokenValue", func(t *models.StaticTeammate) *int { return &t.WeaponTokenValue }},
	{"WeaponUpgradeValue", func(t *models.StaticTeammate) *int { return &t.WeaponUpgradeValue }},
	{"AccUpgradeValue", func(t *models.StaticTeammate) *int { return &t.AccUpgradeValue }},
	{"GearUpgradeValue", func(t *models.StaticTeammate) *int { return &t.GearUpgradeValue }},
}

// teammateToDocument maps a teammate record to its stored property bag.
// Timestamps are set by the write paths, not here.
func teammateToDocument(tm *models.StaticTeammate) bson.M {
	doc := bson.M{
		fieldName:       tm.Name,
		fieldStaticGUID: tm.StaticGUID,
	}
	for _, f := range slotFields {
		doc[f.key] = *f.get(tm)
	}
	return doc
}

// teammateFromDocument maps a stored property bag back to a teammate record.
// Absent keys decode as zero values, so documents written by an older or
// partial schema still decode without error.
func teammateFromDocument(doc bson.M) models.StaticTeammate {
	tm := models.StaticTeammate{
		Name:       docString(doc, fieldName),
		StaticGUID: docString(doc, fieldStaticGUID),
	}
	for _, f := range slotFields {
		*f.get(&tm) = docInt(doc, f.key)
	}
	return tm
}

func docString(doc bson.M, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

// docInt narrows the store's numeric representations to the application's
// native int. BSON round-trips Go ints as int32 or int64 depending on value,
// and legacy documents may hold doubles; floats truncate toward zero.
func docInt(doc bson.M, key string) int {
	switch v := doc[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		// Conversion of a non-finite float to int is implementation-defined,
		// so a corrupt document decodes as 0 instead.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(v)
	}
	return 0
}
