package reward

// ===========================
// PayoutTicket 值對象
// ===========================

// PayoutTicket 獎勵票券值對象
//
// 一張票券描述一個獎勵級距（tier）：
// - name: 顯示名稱（如 "Small payout"、"Jackpot!"）
// - mean / stdDev: 獎勵金額的常態分布參數
// - odds: 觸發門檻（累積門檻語意，見 Sampler.PickTicket）
//
// 設計原則：值對象不可變、自我驗證
//
// 重要：odds 是「累積門檻」而非獨立機率。
// 抽選時票券按 odds 升序排列，一次均勻亂數 r ∈ [0,1) 由低往高比對，
// 第一張滿足 odds >= r 的票券中選。odds = 1.0 的票券因此是保底票券：
// 只要沒有更低 odds 的票券先中選，它必定中選。
type PayoutTicket struct {
	name   string
	mean   float64
	stdDev float64
	odds   float64
}

// NewPayoutTicket 建構函數（checked 版本）
//
// 建構約束：
// - name 不能為空
// - odds 必須在 [0,1] 區間
// - stdDev 必須 >= 0
func NewPayoutTicket(name string, mean, stdDev, odds float64) (PayoutTicket, error) {
	if name == "" {
		return PayoutTicket{}, ErrInvalidTicketName
	}
	if odds < 0 || odds > 1 {
		return PayoutTicket{}, ErrInvalidTicketOdds.WithContext("odds", odds)
	}
	if stdDev < 0 {
		return PayoutTicket{}, ErrInvalidTicketStdDev.WithContext("stdDev", stdDev)
	}
	return PayoutTicket{
		name:   name,
		mean:   mean,
		stdDev: stdDev,
		odds:   odds,
	}, nil
}

// Name 獲取票券名稱
func (t PayoutTicket) Name() string {
	return t.name
}

// Mean 獲取獎勵金額平均值
func (t PayoutTicket) Mean() float64 {
	return t.mean
}

// StdDev 獲取獎勵金額標準差
func (t PayoutTicket) StdDev() float64 {
	return t.stdDev
}

// Odds 獲取累積觸發門檻
func (t PayoutTicket) Odds() float64 {
	return t.odds
}
