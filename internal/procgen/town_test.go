package procgen

import (
	"math/rand"
	"strings"
	"testing"
)

func TestTownSmall(t *testing.T) {
	plan := Town(TownParams{Size: TownSmall, Rand: rand.New(rand.NewSource(1))})

	if plan.Blocks != 3 {
		t.Fatalf("expected 3 blocks, got %d", plan.Blocks)
	}
	if plan.Buildings == 0 {
		t.Fatal("expected at least one building")
	}
	if plan.InfrastructureItems != 0 {
		t.Fatalf("infrastructure planned without being requested: %d items", plan.InfrastructureItems)
	}
	if len(plan.Specs) == 0 {
		t.Fatal("empty plan")
	}

	streets := 0
	for _, s := range plan.Specs {
		if strings.Contains(s.Name, "Street_H_") || strings.Contains(s.Name, "Street_V_") {
			streets++
		}
	}
	if streets == 0 {
		t.Fatal("no street segments planned")
	}
}

func TestTownInfrastructure(t *testing.T) {
	plan := Town(TownParams{
		Size:                  TownSmall,
		IncludeInfrastructure: true,
		Rand:                  rand.New(rand.NewSource(2)),
	})
	if plan.InfrastructureItems == 0 {
		t.Fatal("expected infrastructure items")
	}

	names := strings.Builder{}
	for _, s := range plan.Specs {
		names.WriteString(s.Name)
		names.WriteString("\n")
	}
	for _, marker := range []string{"Sidewalk", "Hydrant"} {
		if !strings.Contains(names.String(), marker) {
			t.Fatalf("infrastructure pass missing %s actors", marker)
		}
	}
}

func TestTownCentralPlazaOnlyForLargeSizes(t *testing.T) {
	small := Town(TownParams{
		Size:                  TownSmall,
		IncludeInfrastructure: true,
		Rand:                  rand.New(rand.NewSource(3)),
	})
	for _, s := range small.Specs {
		if strings.Contains(s.Name, "Plaza") {
			t.Fatalf("small town planned plaza actor %s", s.Name)
		}
	}

	large := Town(TownParams{
		Size:                  TownLarge,
		IncludeInfrastructure: true,
		Rand:                  rand.New(rand.NewSource(3)),
	})
	found := false
	for _, s := range large.Specs {
		if strings.Contains(s.Name, "PlazaFloor") {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("large town missing central plaza")
	}
}

func TestTownDeterministic(t *testing.T) {
	a := Town(TownParams{Size: TownMedium, Rand: rand.New(rand.NewSource(9))})
	b := Town(TownParams{Size: TownMedium, Rand: rand.New(rand.NewSource(9))})
	if a.Buildings != b.Buildings || len(a.Specs) != len(b.Specs) {
		t.Fatalf("identical seeds produced different towns: %d/%d vs %d/%d",
			a.Buildings, len(a.Specs), b.Buildings, len(b.Specs))
	}
}

func TestTownDensityCapsPopulation(t *testing.T) {
	plan := Town(TownParams{
		Size:            TownMetropolis,
		BuildingDensity: 0.2,
		Rand:            rand.New(rand.NewSource(4)),
	})
	if plan.Buildings > 40 {
		t.Fatalf("density cap exceeded: %d buildings", plan.Buildings)
	}
}
