package fuzzdex_test

import (
	"fmt"
	"sort"

	"fuzzdex"
)

// This example demonstrates the two-level lookup convention a caller with
// cross-referenced entity types (e.g. cities and the streets within them)
// uses: build one FuzzDex per entity type, then chain a search on the
// dependent index using an id produced by a prior search on the other
// index as the constraint value.
func Example_twoLevelConstraintChaining() {
	cities := fuzzdex.New()
	mustAddExample(cities, "Springfield", 1)
	mustAddExample(cities, "Shelbyville", 2)
	cities.Finish()

	streets := fuzzdex.New()
	mustAddExample(streets, "Evergreen Terrace", 100, 1)
	mustAddExample(streets, "Main Street", 101, 1)
	mustAddExample(streets, "Main Street", 102, 2)
	streets.Finish()

	cityResults, err := cities.Search("springfield", nil, nil, nil, nil)
	if err != nil || len(cityResults) == 0 {
		fmt.Println("city lookup failed")
		return
	}
	cityID := cityResults[0].ID

	streetResults, err := streets.Search("main", nil, &cityID, nil, nil)
	if err != nil {
		fmt.Println("street lookup failed")
		return
	}

	ids := make([]uint64, 0, len(streetResults))
	for _, r := range streetResults {
		ids = append(ids, r.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fmt.Println(ids)

	// Output:
	// [101]
}

func mustAddExample(dex *fuzzdex.FuzzDex, text string, id uint64, constraints ...uint64) {
	if err := dex.AddPhrase(text, id, constraints...); err != nil {
		panic(err)
	}
}
