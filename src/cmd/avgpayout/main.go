// avgpayout 模擬預設票券組合的期望發放
//
// 抽選十萬次，印出平均發放額與各票券的中獎比例，
// 供調整票券參數時檢查整體經濟。
package main

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jackyeh168/rewardy/src/internal/catalog"
	"github.com/jackyeh168/rewardy/src/internal/domain/reward"
)

const numberOfTrials = 100000

func main() {
	sampler := reward.NewSampler()
	tickets := catalog.DefaultPayoutTickets()

	payoutSum := 0.0
	recordCount := make(map[string]int)
	for i := 0; i < numberOfTrials; i++ {
		ticket := sampler.PickTicket(tickets)
		payoutSum += sampler.SampleValue(ticket)

		payoutType := "No payout"
		if ticket != nil {
			payoutType = ticket.Name()
		}
		recordCount[payoutType]++
	}

	average := decimal.NewFromFloat(payoutSum / numberOfTrials)
	fmt.Printf("Average payout: %s %s\n\n", average.StringFixed(2), catalog.CurrencyUnits)

	fmt.Println("Distribution of payouts:")
	type entry struct {
		payoutType string
		count      int
	}
	entries := make([]entry, 0, len(recordCount))
	for payoutType, count := range recordCount {
		entries = append(entries, entry{payoutType, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	for _, e := range entries {
		percentage := float64(e.count) / numberOfTrials * 100
		fmt.Printf("%s:\t\t%.2f%%\n", e.payoutType, percentage)
	}
}
