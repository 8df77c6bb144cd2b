package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vetfinder-hk/vetfinder/internal/i18n"
	"github.com/vetfinder-hk/vetfinder/internal/recommend"
	"github.com/vetfinder-hk/vetfinder/internal/store"
)

var (
	searchLimit     int
	searchDistrict  string
	searchAnimal    string
	searchEmergency bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search and rank vets against a free-text query",
	Long: `Search ranks every vet in the register against the query and prints the
best matches with the reasons they matched. Without a query it lists the
register, optionally narrowed by the directory filters.`,
	RunE: runSearch,
}

var districtsCmd = &cobra.Command{
	Use:   "districts",
	Short: "List the 18 Hong Kong districts",
	RunE: func(cmd *cobra.Command, args []string) error {
		color.Cyan(i18n.T("all_districts", language))
		for _, d := range store.Districts {
			fmt.Println(d)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", recommend.DefaultLimit, "maximum results")
	searchCmd.Flags().StringVarP(&searchDistrict, "district", "d", "", "filter by district")
	searchCmd.Flags().StringVarP(&searchAnimal, "animal", "a", "", "filter by treated animal")
	searchCmd.Flags().BoolVarP(&searchEmergency, "emergency", "e", false, "24h emergency clinics only")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(districtsCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	_, logger, st, err := loadEnvironment()
	if err != nil {
		return err
	}

	if searchDistrict != "" && !store.IsDistrict(searchDistrict) {
		return fmt.Errorf("unknown district %q (run 'vetfinder districts' for the list)", searchDistrict)
	}

	query := strings.Join(args, " ")

	// A free-text query goes through the ranker; bare filters browse the
	// register directly.
	if query != "" {
		ranker := recommend.NewRanker(st, logger)
		recs := ranker.Recommend(cmd.Context(), query, searchLimit)
		printRecommendations(recs)
		return nil
	}

	vets := st.Filter(store.FilterOptions{
		District:      searchDistrict,
		Animal:        searchAnimal,
		EmergencyOnly: searchEmergency,
		Limit:         searchLimit,
	})
	if searchEmergency {
		color.Red(i18n.T("emergency_only", language))
	}
	printVets(vets)
	return nil
}

func printRecommendations(recs []recommend.RecommendedVet) {
	if len(recs) == 0 {
		color.Yellow(i18n.T("no_vets_found", language))
		return
	}

	color.Cyan(i18n.T("recommended_vets", language))
	fmt.Println(i18n.Tf("results_count", language, "count", strconv.Itoa(len(recs))))
	fmt.Println()

	for i, rec := range recs {
		printVetLine(i+1, rec.VetRecord)
		color.Yellow("   %s", rec.Reason)
		fmt.Println()
	}
}

func printVets(vets []store.VetRecord) {
	if len(vets) == 0 {
		color.Yellow(i18n.T("no_vets_found", language))
		return
	}

	fmt.Println(i18n.Tf("results_count", language, "count", strconv.Itoa(len(vets))))
	fmt.Println()

	for i, rec := range vets {
		printVetLine(i+1, rec)
		fmt.Println()
	}
}

func printVetLine(n int, rec store.VetRecord) {
	name := color.New(color.FgGreen, color.Bold)
	fmt.Printf("%2d. ", n)
	name.Print(rec.Name)
	fmt.Printf(" (%s)\n", rec.RegistrationNo)
	fmt.Printf("   %s: %s\n", i18n.T("district", language), rec.District)
	fmt.Printf("   %s: %s\n", i18n.T("services", language), rec.Services)
	fmt.Printf("   %s: %s\n", i18n.T("phone", language), rec.Phone)
	if rec.Emergency {
		color.Red("   %s", i18n.T("emergency_service", language))
	}
}
