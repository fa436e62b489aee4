package reward

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// ===========================
// Sampler 領域服務
// ===========================

// Sampler 獎勵抽選領域服務
//
// 設計原則：
// 1. Domain Service 封裝不屬於任何單一值對象的抽選邏輯
// 2. 除了消耗亂數來源之外無任何副作用，呼叫之間不保留狀態
// 3. 亂數來源由建構函數注入，測試可傳入固定種子取得可重現的結果
//
// 為什麼不直接用套件層級的 math/rand 函數：
// - 測試需要可控的亂數序列（固定 Source）
// - 統計性測試（抽 1000 次驗證分布）必須與其他測試隔離亂數狀態
type Sampler struct {
	rng *rand.Rand
}

// NewSampler 建立使用時間種子的 Sampler（生產用途）
func NewSampler() *Sampler {
	return NewSamplerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewSamplerWithSource 建立使用指定亂數來源的 Sampler（測試用途）
func NewSamplerWithSource(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// PickTicket 從票券列表抽選至多一張票券
//
// 演算法：
// 1. 複製輸入列表（絕不修改呼叫者提供的目錄資料）
// 2. 按 odds 升序穩定排序（odds 相同時保留輸入相對順序）
// 3. 抽一次均勻亂數 r ∈ [0,1)
// 4. 由低往高掃描，返回第一張 odds >= r 的票券
// 5. 全部不滿足時返回 nil（未中獎，不是錯誤）
//
// 語意說明：odds 是累積門檻，不是互斥的分桶機率。
// 高 odds 票券是低 odds 票券的保底：odds = 1.0 的票券在
// 沒有更稀有票券先中選時必定中選。呼叫者按此語意設計票券目錄。
func (s *Sampler) PickTicket(tickets []PayoutTicket) *PayoutTicket {
	sorted := make([]PayoutTicket, len(tickets))
	copy(sorted, tickets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].odds < sorted[j].odds
	})

	r := s.rng.Float64()
	for i := range sorted {
		if sorted[i].odds >= r {
			picked := sorted[i]
			return &picked
		}
	}
	return nil
}

// SampleValue 從中選票券的分布抽取獎勵金額
//
// 未中獎（ticket == nil）返回 0。
//
// 使用 Box–Muller 轉換產生常態分布亂數：
// 抽兩個獨立均勻亂數 u, v ∈ (0,1]（抽到剛好為 0 時重抽），
// z = sqrt(-2·ln(u))·cos(2π·v)，返回 z·stdDev + mean。
//
// stdDev = 0 時退化為恰好返回 mean（z·0 == 0，u > 0 保證 ln(u) 有限）。
func (s *Sampler) SampleValue(ticket *PayoutTicket) float64 {
	if ticket == nil {
		return 0
	}
	return s.gaussian(ticket.mean, ticket.stdDev)
}

// gaussian Box–Muller 常態分布亂數
func (s *Sampler) gaussian(mean, stdDev float64) float64 {
	var u, v float64
	for u == 0 {
		u = s.rng.Float64()
	}
	for v == 0 {
		v = s.rng.Float64()
	}
	z := math.Sqrt(-2.0*math.Log(u)) * math.Cos(2.0*math.Pi*v)
	return z*stdDev + mean
}
