package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabajaradev/static-roster/shared/models"
	"go.mongodb.org/mongo-driver/bson"
)

func TestTeammateToDocument(t *testing.T) {
	tm := &models.StaticTeammate{
		Name:             "bob",
		StaticGUID:       "0b38a7a2-3a13-4fb4-9a2c-6a7d3a6a1a11",
		EarsValue:        5,
		WeaponValue:      710,
		GearUpgradeValue: 3,
	}

	doc := teammateToDocument(tm)

	assert.Equal(t, "bob", doc["Name"])
	assert.Equal(t, "0b38a7a2-3a13-4fb4-9a2c-6a7d3a6a1a11", doc["StaticGUID"])
	assert.Equal(t, 5, doc["EarsValue"])
	assert.Equal(t, 710, doc["WeaponValue"])
	assert.Equal(t, 3, doc["GearUpgradeValue"])
	assert.Equal(t, 0, doc["NeckValue"])

	// Timestamps belong to the write paths, never to the mapper.
	assert.NotContains(t, doc, "CreationDate")
	assert.NotContains(t, doc, "LastUpdatedDate")

	// Two strings, fourteen slot values.
	assert.Len(t, doc, 16)
}

func TestTeammateFromDocument(t *testing.T) {
	t.Run("full document decodes every field", func(t *testing.T) {
		doc := bson.M{
			"Name":               "alice",
			"StaticGUID":         "guid-1",
			"EarsValue":          int32(1),
			"NeckValue":          int32(2),
			"WristsValue":        int32(3),
			"RingValue":          int32(4),
			"WeaponValue":        int32(5),
			"HeadValue":          int32(6),
			"BodyValue":          int32(7),
			"HandsValue":         int32(8),
			"LegsValue":          int32(9),
			"FeetValue":          int32(10),
			"WeaponTokenValue":   int32(11),
			"WeaponUpgradeValue": int32(12),
			"AccUpgradeValue":    int32(13),
			"GearUpgradeValue":   int32(14),
		}

		tm := teammateFromDocument(doc)

		assert.Equal(t, "alice", tm.Name)
		assert.Equal(t, "guid-1", tm.StaticGUID)
		assert.Equal(t, 1, tm.EarsValue)
		assert.Equal(t, 7, tm.BodyValue)
		assert.Equal(t, 14, tm.GearUpgradeValue)
	})

	t.Run("absent keys decode as zero values", func(t *testing.T) {
		tm := teammateFromDocument(bson.M{"Name": "legacy"})

		assert.Equal(t, "legacy", tm.Name)
		assert.Equal(t, "", tm.StaticGUID)
		assert.Equal(t, 0, tm.EarsValue)
		assert.Equal(t, 0, tm.WeaponUpgradeValue)
	})

	t.Run("empty document decodes without error", func(t *testing.T) {
		tm := teammateFromDocument(bson.M{})
		assert.Equal(t, models.StaticTeammate{}, tm)
	})

	t.Run("numeric representations narrow to int", func(t *testing.T) {
		doc := bson.M{
			"EarsValue":   int64(42),
			"NeckValue":   int32(7),
			"WristsValue": 11,
			"RingValue":   float64(9.9), // truncates toward zero
		}

		tm := teammateFromDocument(doc)

		assert.Equal(t, 42, tm.EarsValue)
		assert.Equal(t, 7, tm.NeckValue)
		assert.Equal(t, 11, tm.WristsValue)
		assert.Equal(t, 9, tm.RingValue)
	})

	t.Run("large int64 survives on 64-bit builds", func(t *testing.T) {
		large := int64(math.MaxInt64)
		tm := teammateFromDocument(bson.M{"EarsValue": large})
		assert.Equal(t, int(large), tm.EarsValue)
	})

	t.Run("non-finite floats decode as zero", func(t *testing.T) {
		doc := bson.M{
			"EarsValue":   math.NaN(),
			"NeckValue":   math.Inf(1),
			"WristsValue": math.Inf(-1),
		}

		tm := teammateFromDocument(doc)

		assert.Equal(t, 0, tm.EarsValue)
		assert.Equal(t, 0, tm.NeckValue)
		assert.Equal(t, 0, tm.WristsValue)
	})

	t.Run("non-numeric values decode as zero", func(t *testing.T) {
		tm := teammateFromDocument(bson.M{"EarsValue": "five", "Name": 3})
		assert.Equal(t, 0, tm.EarsValue)
		assert.Equal(t, "", tm.Name)
	})
}

func TestTeammateRoundTrip(t *testing.T) {
	in := models.StaticTeammate{
		Name:               "carol",
		StaticGUID:         "6b4d0a8e-08fb-4b5a-8df2-0f2f3fba2b77",
		EarsValue:          1,
		NeckValue:          2,
		WristsValue:        3,
		RingValue:          4,
		WeaponValue:        5,
		HeadValue:          6,
		BodyValue:          7,
		HandsValue:         8,
		LegsValue:          9,
		FeetValue:          10,
		WeaponTokenValue:   11,
		WeaponUpgradeValue: 12,
		AccUpgradeValue:    13,
		GearUpgradeValue:   14,
	}

	doc := teammateToDocument(&in)
	out := teammateFromDocument(doc)

	require.Equal(t, in, out)
}
