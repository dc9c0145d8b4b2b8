package integration

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 借阅流转集成测试
//
// 覆盖的关键点:
// 1. 借出/归还的完整闭环
// 2. 悲观锁防超借(并发借出)
// 3. 归还释放副本
// 4. 逾期查询

// TestCirculationFlow 测试借出-查询-归还完整闭环
func TestCirculationFlow(t *testing.T) {
	RequireServer(t)

	isbn := AddTestBook(t, "《借阅闭环测试》", 2)
	email := RegisterTestBorrower(t, "flow")

	// 1. 借出
	checkoutResp := PostJSON(t, BaseURL+"/borrows/checkout", map[string]string{
		"isbn":           isbn,
		"borrower_email": email,
		"due_date":       FutureDate(14),
	})
	require.Equal(t, 0, checkoutResp.Code, "借出应该成功: %s", checkoutResp.Message)

	var loan LoanData
	require.NoError(t, json.Unmarshal(checkoutResp.Data, &loan))
	assert.NotZero(t, loan.ID, "借阅记录ID应该大于0")
	assert.Nil(t, loan.ReturnedDate, "新借出的记录应为在借状态")

	// 2. 查询借阅人在借图书
	listResp := GetJSON(t, BaseURL+"/borrows/borrower/"+email)
	require.Equal(t, 0, listResp.Code, "查询在借图书失败: %s", listResp.Message)

	var loans []LoanData
	require.NoError(t, json.Unmarshal(listResp.Data, &loans))
	require.Len(t, loans, 1, "应有1条在借记录")
	require.NotNil(t, loans[0].Book, "在借记录应携带图书信息")
	assert.Equal(t, isbn, loans[0].Book.ISBN)

	// 3. 归还
	returnResp := PostJSON(t, BaseURL+"/borrows/return", map[string]string{
		"isbn":           isbn,
		"borrower_email": email,
	})
	require.Equal(t, 0, returnResp.Code, "归还应该成功: %s", returnResp.Message)

	var returned LoanData
	require.NoError(t, json.Unmarshal(returnResp.Data, &returned))
	assert.NotNil(t, returned.ReturnedDate, "归还后应写入归还日期")

	// 4. 归还后在借列表应为空
	listResp = GetJSON(t, BaseURL+"/borrows/borrower/"+email)
	require.Equal(t, 0, listResp.Code)
	require.NoError(t, json.Unmarshal(listResp.Data, &loans))
	assert.Empty(t, loans, "归还后不应再有在借记录")

	// 5. 重复归还应失败(无在借记录)
	doubleReturn := PostJSON(t, BaseURL+"/borrows/return", map[string]string{
		"isbn":           isbn,
		"borrower_email": email,
	})
	assert.Equal(t, 40002, doubleReturn.Code, "重复归还应返回无在借记录")
}

// TestCheckoutExhaustsCapacity 测试副本借空后拒绝借出
func TestCheckoutExhaustsCapacity(t *testing.T) {
	RequireServer(t)

	isbn := AddTestBook(t, "《容量测试》", 1)
	first := RegisterTestBorrower(t, "cap1")
	second := RegisterTestBorrower(t, "cap2")

	// 第一个借阅人借走唯一副本
	resp := PostJSON(t, BaseURL+"/borrows/checkout", map[string]string{
		"isbn":           isbn,
		"borrower_email": first,
		"due_date":       FutureDate(7),
	})
	require.Equal(t, 0, resp.Code, "首次借出应该成功: %s", resp.Message)

	// 第二个借阅人借不到
	resp = PostJSON(t, BaseURL+"/borrows/checkout", map[string]string{
		"isbn":           isbn,
		"borrower_email": second,
		"due_date":       FutureDate(7),
	})
	assert.Equal(t, 40001, resp.Code, "副本借空后应返回无可借副本")

	// 归还后第二个借阅人可以借
	resp = PostJSON(t, BaseURL+"/borrows/return", map[string]string{
		"isbn":           isbn,
		"borrower_email": first,
	})
	require.Equal(t, 0, resp.Code, "归还应该成功: %s", resp.Message)

	resp = PostJSON(t, BaseURL+"/borrows/checkout", map[string]string{
		"isbn":           isbn,
		"borrower_email": second,
		"due_date":       FutureDate(7),
	})
	assert.Equal(t, 0, resp.Code, "归还释放副本后借出应该成功: %s", resp.Message)
}

// TestConcurrentCheckoutNoOversell 测试并发借出不超借
// 这是整个服务最核心的不变式:
// 可借副本只剩1本时,N个并发请求只能成功1个
func TestConcurrentCheckoutNoOversell(t *testing.T) {
	RequireServer(t)

	const concurrency = 8

	isbn := AddTestBook(t, "《并发防超借测试》", 1)

	// 注册N个借阅人
	emails := make([]string, concurrency)
	for i := 0; i < concurrency; i++ {
		emails[i] = RegisterTestBorrower(t, "race")
	}

	// 并发借出
	var wg sync.WaitGroup
	results := make([]int, concurrency)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := PostJSON(t, BaseURL+"/borrows/checkout", map[string]string{
				"isbn":           isbn,
				"borrower_email": emails[i],
				"due_date":       FutureDate(14),
			})
			results[i] = resp.Code
		}(i)
	}
	wg.Wait()

	// 统计结果
	successCount := 0
	noCopyCount := 0
	for _, code := range results {
		switch code {
		case 0:
			successCount++
		case 40001:
			noCopyCount++
		default:
			t.Errorf("预期之外的错误码: %d", code)
		}
	}

	assert.Equal(t, 1, successCount, "恰好1个请求应成功(否则超借)")
	assert.Equal(t, concurrency-1, noCopyCount, "其余请求应返回无可借副本")

	t.Logf("✓ 并发防超借验证通过: %d成功 / %d无副本", successCount, noCopyCount)
}

// TestOverdueLoans 测试逾期查询
func TestOverdueLoans(t *testing.T) {
	RequireServer(t)

	isbn := AddTestBook(t, "《逾期测试》", 1)
	email := RegisterTestBorrower(t, "overdue")

	// 借出日期在10天前,应还日期在5天前 → 已逾期
	resp := PostJSON(t, BaseURL+"/borrows/checkout", map[string]string{
		"isbn":           isbn,
		"borrower_email": email,
		"borrowed_date":  PastDate(10),
		"due_date":       PastDate(5),
	})
	require.Equal(t, 0, resp.Code, "借出应该成功: %s", resp.Message)

	// 逾期列表应包含这条记录
	overdueResp := GetJSON(t, BaseURL+"/borrows/overdue")
	require.Equal(t, 0, overdueResp.Code, "逾期查询失败: %s", overdueResp.Message)

	var loans []LoanData
	require.NoError(t, json.Unmarshal(overdueResp.Data, &loans))

	found := false
	for _, l := range loans {
		if l.Book != nil && l.Book.ISBN == isbn {
			found = true
			break
		}
	}
	assert.True(t, found, "逾期列表应包含刚借出的逾期记录")

	// 归还后不再逾期
	resp = PostJSON(t, BaseURL+"/borrows/return", map[string]string{
		"isbn":           isbn,
		"borrower_email": email,
	})
	require.Equal(t, 0, resp.Code, "归还应该成功: %s", resp.Message)

	overdueResp = GetJSON(t, BaseURL+"/borrows/overdue")
	require.Equal(t, 0, overdueResp.Code)
	require.NoError(t, json.Unmarshal(overdueResp.Data, &loans))
	for _, l := range loans {
		if l.Book != nil && l.Book.ISBN == isbn {
			t.Error("已归还的记录不应出现在逾期列表中")
		}
	}
}

// TestCheckoutInvalidDueDate 测试应还日期早于借出日期
func TestCheckoutInvalidDueDate(t *testing.T) {
	RequireServer(t)

	isbn := AddTestBook(t, "《日期校验测试》", 1)
	email := RegisterTestBorrower(t, "duedate")

	resp := PostJSON(t, BaseURL+"/borrows/checkout", map[string]string{
		"isbn":           isbn,
		"borrower_email": email,
		"due_date":       PastDate(1),
	})
	assert.Equal(t, 40005, resp.Code, "应还日期早于借出日期应被拒绝")
}

// TestCheckoutUnknownTargets 测试图书/借阅人不存在
func TestCheckoutUnknownTargets(t *testing.T) {
	RequireServer(t)

	isbn := AddTestBook(t, "《对象不存在测试》", 1)
	email := RegisterTestBorrower(t, "unknown")

	// 图书不存在
	resp := PostJSON(t, BaseURL+"/borrows/checkout", map[string]string{
		"isbn":           "9999999999999",
		"borrower_email": email,
		"due_date":       FutureDate(7),
	})
	assert.Equal(t, 40401, resp.Code, "图书不存在应返回40401")

	// 借阅人不存在
	resp = PostJSON(t, BaseURL+"/borrows/checkout", map[string]string{
		"isbn":           isbn,
		"borrower_email": "ghost_" + email,
		"due_date":       FutureDate(7),
	})
	assert.Equal(t, 40402, resp.Code, "借阅人不存在应返回40402")
}
