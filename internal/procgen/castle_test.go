package procgen

import (
	"fmt"
	"strings"
	"testing"
)

func castleNames(plan CastlePlan) map[string]bool {
	names := make(map[string]bool, len(plan.Specs))
	for _, s := range plan.Specs {
		names[s.Name] = true
	}
	return names
}

func TestCastleCoreStructures(t *testing.T) {
	plan := Castle(CastleParams{Size: CastleSmall})
	names := castleNames(plan)

	for _, want := range []string{
		"Castle_Barbican", "Castle_Portcullis", "Castle_InnerPortcullis",
		"Castle_KeepBase", "Castle_KeepTower", "Castle_GreatHall",
		"Castle_Drawbridge",
		"Castle_Stables", "Castle_Chapel", "Castle_Well", "Castle_Treasury",
		"Castle_Tower_0", "Castle_Tower_3", "Castle_InnerTower_0",
		"Castle_GateTower_-1", "Castle_GateTower_1",
	} {
		if !names[want] {
			t.Fatalf("missing %s", want)
		}
	}
}

func TestCastleOptionalPhases(t *testing.T) {
	bare := Castle(CastleParams{Size: CastleSmall})
	for _, s := range bare.Specs {
		if strings.Contains(s.Name, "Catapult") || strings.Contains(s.Name, "VillageHouse") {
			t.Fatalf("unrequested phase produced %s", s.Name)
		}
	}

	full := Castle(CastleParams{
		Size:                CastleSmall,
		IncludeSiegeWeapons: true,
		IncludeVillage:      true,
	})
	names := castleNames(full)
	for _, want := range []string{
		"Castle_CatapultBase_0", "Castle_Ballista_3",
		"Castle_MarketStall_0", "Castle_Workshop_0",
	} {
		if !names[want] {
			t.Fatalf("missing %s", want)
		}
	}

	villages := 0
	for _, s := range full.Specs {
		if strings.HasPrefix(s.Name, "Castle_VillageHouse_") {
			villages++
		}
	}
	if villages == 0 {
		t.Fatal("village phase planned no houses")
	}
}

func TestCastleFlags(t *testing.T) {
	plan := Castle(CastleParams{Size: CastleMedium, NamePrefix: "Fort"})
	names := castleNames(plan)

	// Four corner towers plus two gate towers fly flags.
	for i := 0; i < 6; i++ {
		if !names[fmt.Sprintf("Fort_FlagPole_%d", i)] {
			t.Fatalf("missing flag pole %d", i)
		}
	}
}

func TestCastleTowerTopsByStyle(t *testing.T) {
	medieval := Castle(CastleParams{Size: CastleSmall, ArchitecturalStyle: "medieval"})
	if !castleNames(medieval)["Castle_TowerTop_0"] {
		t.Fatal("medieval castle missing conical tower tops")
	}

	gothic := Castle(CastleParams{Size: CastleSmall, ArchitecturalStyle: "gothic"})
	if castleNames(gothic)["Castle_TowerTop_0"] {
		t.Fatal("gothic castle should not have conical outer tower tops")
	}
}

func TestCastleSizeScales(t *testing.T) {
	small := Castle(CastleParams{Size: CastleSmall})
	epic := Castle(CastleParams{Size: CastleEpic})
	if len(epic.Specs) <= len(small.Specs) {
		t.Fatalf("epic castle (%d specs) not larger than small (%d)", len(epic.Specs), len(small.Specs))
	}
	if epic.Towers <= small.Towers {
		t.Fatalf("epic tower count %d not above small %d", epic.Towers, small.Towers)
	}
}
