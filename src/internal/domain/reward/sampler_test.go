package reward_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/rewardy/src/internal/domain/reward"
)

// ===== Sampler 測試 =====

func mustTicket(t *testing.T, name string, mean, stdDev, odds float64) reward.PayoutTicket {
	t.Helper()
	ticket, err := reward.NewPayoutTicket(name, mean, stdDev, odds)
	require.NoError(t, err)
	return ticket
}

// Test 1: 空票券列表永遠落空
func TestSampler_PickTicket_EmptyList_ReturnsNil(t *testing.T) {
	// Arrange
	sampler := reward.NewSamplerWithSource(rand.NewSource(1))

	// Act & Assert
	for i := 0; i < 100; i++ {
		assert.Nil(t, sampler.PickTicket(nil))
	}
}

// Test 2: 含 odds = 1.0 票券的列表永不落空
func TestSampler_PickTicket_FullOddsTicket_NeverNil(t *testing.T) {
	// Arrange
	sampler := reward.NewSamplerWithSource(rand.NewSource(2))
	tickets := []reward.PayoutTicket{
		mustTicket(t, "Rare", 50, 4, 0.05),
		mustTicket(t, "Common", 5, 1, 1.0),
	}

	// Act & Assert
	for i := 0; i < 1000; i++ {
		picked := sampler.PickTicket(tickets)
		require.NotNil(t, picked)
	}
}

// Test 3: 抽中機率符合階梯門檻語意
//
// 兩張票券 odds 0.25 與 1.0：升序排列後，單一均勻亂數 r 落在
// [0, 0.25] 抽中低門檻票券，否則抽中高門檻票券。
// 1000 次抽選低門檻票券期望 250 次。
func TestSampler_PickTicket_FrequencyMatchesOdds(t *testing.T) {
	// Arrange
	sampler := reward.NewSamplerWithSource(rand.NewSource(42))
	tickets := []reward.PayoutTicket{
		mustTicket(t, "Rare", 50, 4, 0.25),
		mustTicket(t, "Common", 5, 1, 1.0),
	}

	// Act
	rareCount := 0
	for i := 0; i < 1000; i++ {
		picked := sampler.PickTicket(tickets)
		require.NotNil(t, picked)
		if picked.Name() == "Rare" {
			rareCount++
		}
	}

	// Assert: 期望 250，容忍統計波動
	assert.InDelta(t, 250, rareCount, 100)
}

// Test 4: PickTicket 不改動呼叫者的切片
func TestSampler_PickTicket_DoesNotMutateInput(t *testing.T) {
	// Arrange: 刻意以降序傳入
	sampler := reward.NewSamplerWithSource(rand.NewSource(3))
	tickets := []reward.PayoutTicket{
		mustTicket(t, "Common", 5, 1, 0.95),
		mustTicket(t, "Medium", 10, 2, 0.35),
		mustTicket(t, "Rare", 50, 4, 0.05),
	}

	// Act
	for i := 0; i < 100; i++ {
		sampler.PickTicket(tickets)
	}

	// Assert: 原切片順序不變
	assert.Equal(t, "Common", tickets[0].Name())
	assert.Equal(t, "Medium", tickets[1].Name())
	assert.Equal(t, "Rare", tickets[2].Name())
}

// Test 5: 落空的抽選取值為 0
func TestSampler_SampleValue_NilTicket_Zero(t *testing.T) {
	// Arrange
	sampler := reward.NewSamplerWithSource(rand.NewSource(4))

	// Act & Assert
	assert.Equal(t, 0.0, sampler.SampleValue(nil))
}

// Test 6: 零標準差取值恰為均值
func TestSampler_SampleValue_ZeroStdDev_ExactMean(t *testing.T) {
	// Arrange
	sampler := reward.NewSamplerWithSource(rand.NewSource(5))
	ticket := mustTicket(t, "Fixed", 42, 0, 1.0)

	// Act & Assert
	for i := 0; i < 100; i++ {
		assert.Equal(t, 42.0, sampler.SampleValue(&ticket))
	}
}

// Test 7: 取值分佈以均值為中心
func TestSampler_SampleValue_CentersOnMean(t *testing.T) {
	// Arrange
	sampler := reward.NewSamplerWithSource(rand.NewSource(6))
	ticket := mustTicket(t, "Medium", 10, 2, 1.0)

	// Act
	sum := 0.0
	const draws = 10000
	for i := 0; i < draws; i++ {
		sum += sampler.SampleValue(&ticket)
	}

	// Assert: 樣本均值落在均值附近（stdDev 2、一萬次抽樣，容差從寬）
	assert.InDelta(t, 10.0, sum/draws, 0.2)
}
