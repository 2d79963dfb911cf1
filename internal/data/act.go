package data

// EncounterID enumerates Act 1's encounter pools as named in
// lib/src/data/act.rs, so that every probability-table entry is traceable
// to the reference even though most variants are not ported (mirroring
// enemy/party.rs's own todo!() coverage for the same set).
type EncounterID int

const (
	EncounterUnknown EncounterID = iota
	EncounterCultist
	EncounterJawWorm
	EncounterTwoLouses
	EncounterSmallSlimes
	EncounterGremlinGang
	EncounterLotsOfSlimes
	EncounterRedSlaver
	EncounterExordiumThugs
	EncounterExordiumWildlife
	EncounterBlueSlaver
	EncounterLooter
	EncounterLargeSlime
	EncounterThreeLouses
	EncounterTwoFungiBeasts
	EncounterGremlinNob
	EncounterLagavulin
	EncounterThreeSentries
	EncounterTheGuardian
	EncounterHexaghost
	EncounterSlimeBoss
)

// WeightedEncounter pairs an encounter with its selection probability.
type WeightedEncounter struct {
	Encounter EncounterID
	Weight    float64
}

// Act is the static description of an act's encounter pools, ported from
// lib/src/data/act.rs. Only Act 1 is populated; Acts 2-4 are out of this
// engine's content-table scope (see DESIGN.md) and surface as
// UnimplementedError from LookupAct.
type Act struct {
	Number                    int
	MapSeedOffset             uint64
	WeakMonsterEncounterCount int
	WeakMonsterPool           []WeightedEncounter
	StrongMonsterPool         []WeightedEncounter
	EliteEncounterPool        []WeightedEncounter
	BossEncounterPool         []EncounterID
}

var act1 = &Act{
	Number:                    1,
	MapSeedOffset:             1,
	WeakMonsterEncounterCount: 3,
	WeakMonsterPool: []WeightedEncounter{
		{EncounterCultist, 1.0 / 4.0},
		{EncounterJawWorm, 1.0 / 4.0},
		{EncounterTwoLouses, 1.0 / 4.0},
		{EncounterSmallSlimes, 1.0 / 4.0},
	},
	StrongMonsterPool: []WeightedEncounter{
		{EncounterGremlinGang, 1.0 / 16.0},
		{EncounterLotsOfSlimes, 1.0 / 16.0},
		{EncounterRedSlaver, 1.0 / 16.0},
		{EncounterExordiumThugs, 1.5 / 16.0},
		{EncounterExordiumWildlife, 1.5 / 16.0},
		{EncounterBlueSlaver, 2.0 / 16.0},
		{EncounterLooter, 2.0 / 16.0},
		{EncounterLargeSlime, 2.0 / 16.0},
		{EncounterThreeLouses, 2.0 / 16.0},
		{EncounterTwoFungiBeasts, 2.0 / 16.0},
	},
	EliteEncounterPool: []WeightedEncounter{
		{EncounterGremlinNob, 1.0 / 3.0},
		{EncounterLagavulin, 1.0 / 3.0},
		{EncounterThreeSentries, 1.0 / 3.0},
	},
	BossEncounterPool: []EncounterID{
		EncounterTheGuardian, EncounterHexaghost, EncounterSlimeBoss,
	},
}

func LookupAct(number int) (*Act, error) {
	if number == 1 {
		return act1, nil
	}
	return nil, NewUnimplementedError(KindEncounter, "act")
}

// EnemyPartyFor resolves an encounter into the enemy IDs that make up its
// party. Only the encounters original_source's own EnemyPartyGenerator
// implements are ported (Cultist, SmallSlimes); every other encounter
// surfaces UnimplementedError exactly as it does there, and JawWorm is the
// one engine-only supplement beyond that set (see DESIGN.md).
func EnemyPartyFor(id EncounterID, coinFlip bool) ([]EnemyID, error) {
	switch id {
	case EncounterCultist:
		return []EnemyID{EnemyCultist}, nil
	case EncounterJawWorm:
		return []EnemyID{EnemyJawWorm}, nil
	case EncounterSmallSlimes:
		if coinFlip {
			return []EnemyID{EnemySpikeSlimeS, EnemyAcidSlimeM}, nil
		}
		// The reference's other branch (AcidSlimeS + SpikeSlimeM) is outside
		// this engine's content-table scope (see DESIGN.md).
		return nil, NewUnimplementedError(KindEncounter, "AcidSlimeS+SpikeSlimeM")
	default:
		return nil, NewUnimplementedError(KindEncounter, encounterName(id))
	}
}

func encounterName(id EncounterID) string {
	names := map[EncounterID]string{
		EncounterCultist: "Cultist", EncounterJawWorm: "JawWorm",
		EncounterTwoLouses: "TwoLouses", EncounterSmallSlimes: "SmallSlimes",
		EncounterGremlinGang: "GremlinGang", EncounterLotsOfSlimes: "LotsOfSlimes",
		EncounterRedSlaver: "RedSlaver", EncounterExordiumThugs: "ExordiumThugs",
		EncounterExordiumWildlife: "ExordiumWildlife", EncounterBlueSlaver: "BlueSlaver",
		EncounterLooter: "Looter", EncounterLargeSlime: "LargeSlime",
		EncounterThreeLouses: "ThreeLouses", EncounterTwoFungiBeasts: "TwoFungiBeasts",
		EncounterGremlinNob: "GremlinNob", EncounterLagavulin: "Lagavulin",
		EncounterThreeSentries: "ThreeSentries", EncounterTheGuardian: "TheGuardian",
		EncounterHexaghost: "Hexaghost", EncounterSlimeBoss: "SlimeBoss",
	}
	if n, ok := names[id]; ok {
		return n
	}
	return "encounter"
}
