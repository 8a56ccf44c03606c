// shared/models/teammate.go
package models

// StaticTeammate is one member's equipment snapshot within a Static group.
// The pair (Name, StaticGUID) is the natural key: at most one record exists
// per member per group. Timestamps are managed by the store on write and are
// not part of the wire shape.
type StaticTeammate struct {
	Name               string `json:"name"`
	StaticGUID         string `json:"staticGuid"`
	EarsValue          int    `json:"earsValue"`
	NeckValue          int    `json:"neckValue"`
	WristsValue        int    `json:"wristsValue"`
	RingValue          int    `json:"ringValue"`
	WeaponValue        int    `json:"weaponValue"`
	HeadValue          int    `json:"headValue"`
	BodyValue          int    `json:"bodyValue"`
	HandsValue         int    `json:"handsValue"`
	LegsValue          int    `json:"legsValue"`
	FeetValue          int    `json:"feetValue"`
	WeaponTokenValue   int    `json:"weaponTokenValue"`
	WeaponUpgradeValue int    `json:"weaponUpgradeValue"`
	AccUpgradeValue    int    `json:"accUpgradeValue"`
	GearUpgradeValue   int    `json:"gearUpgradeValue"`
}
