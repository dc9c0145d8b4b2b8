package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 图书目录与借阅人集成测试

// TestBookCRUD 测试图书目录的增删改查
func TestBookCRUD(t *testing.T) {
	RequireServer(t)

	isbn := AddTestBook(t, "《目录CRUD测试》", 3)

	// 查询详情
	resp := GetJSON(t, BaseURL+"/books/"+isbn)
	require.Equal(t, 0, resp.Code, "查询图书失败: %s", resp.Message)

	var b BookData
	require.NoError(t, json.Unmarshal(resp.Data, &b))
	assert.Equal(t, isbn, b.ISBN)
	assert.Equal(t, 3, b.AvailableQuantity)

	// 更新
	resp = PutJSON(t, BaseURL+"/books/"+isbn, map[string]interface{}{
		"title":              "《目录CRUD测试(修订)》",
		"available_quantity": 5,
	})
	require.Equal(t, 0, resp.Code, "更新图书失败: %s", resp.Message)

	// 更新后读到新值(验证缓存失效生效)
	resp = GetJSON(t, BaseURL+"/books/"+isbn)
	require.Equal(t, 0, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &b))
	assert.Equal(t, "《目录CRUD测试(修订)》", b.Title)
	assert.Equal(t, 5, b.AvailableQuantity)

	// 删除
	resp = DeleteJSON(t, BaseURL+"/books/"+isbn)
	require.Equal(t, 0, resp.Code, "删除图书失败: %s", resp.Message)

	// 删除后查询不到
	resp = GetJSON(t, BaseURL+"/books/"+isbn)
	assert.Equal(t, 40401, resp.Code, "删除后查询应返回图书不存在")
}

// TestBookDuplicateISBN 测试ISBN重复录入
func TestBookDuplicateISBN(t *testing.T) {
	RequireServer(t)

	isbn := AddTestBook(t, "《重复ISBN测试》", 1)

	resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"isbn":   isbn,
		"title":  "《重复ISBN测试2》",
		"author": "测试作者",
	})
	assert.Equal(t, 40004, resp.Code, "重复ISBN应被拒绝")
}

// TestBookInvalidISBN 测试ISBN格式校验
func TestBookInvalidISBN(t *testing.T) {
	RequireServer(t)

	// 含字母的ISBN应被参数校验拒绝
	resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"isbn":   "97871154abc",
		"title":  "《非法ISBN测试》",
		"author": "测试作者",
	})
	assert.NotEqual(t, 0, resp.Code, "非法ISBN应被拒绝")
}

// TestDeleteBookWithActiveLoan 测试在借图书不允许删除
func TestDeleteBookWithActiveLoan(t *testing.T) {
	RequireServer(t)

	isbn := AddTestBook(t, "《删除约束测试》", 1)
	email := RegisterTestBorrower(t, "delete")

	resp := PostJSON(t, BaseURL+"/borrows/checkout", map[string]string{
		"isbn":           isbn,
		"borrower_email": email,
		"due_date":       FutureDate(7),
	})
	require.Equal(t, 0, resp.Code, "借出应该成功: %s", resp.Message)

	// 在借期间删除被拒绝
	resp = DeleteJSON(t, BaseURL+"/books/"+isbn)
	assert.Equal(t, 40006, resp.Code, "在借图书删除应被拒绝")

	// 归还后可以删除
	resp = PostJSON(t, BaseURL+"/borrows/return", map[string]string{
		"isbn":           isbn,
		"borrower_email": email,
	})
	require.Equal(t, 0, resp.Code, "归还应该成功: %s", resp.Message)

	resp = DeleteJSON(t, BaseURL+"/books/"+isbn)
	assert.Equal(t, 0, resp.Code, "归还后删除应该成功: %s", resp.Message)
}

// TestBorrowerCRUD 测试借阅人的注册与维护
func TestBorrowerCRUD(t *testing.T) {
	RequireServer(t)

	email := RegisterTestBorrower(t, "crud")

	// 查询详情
	resp := GetJSON(t, BaseURL+"/borrowers/"+email)
	require.Equal(t, 0, resp.Code, "查询借阅人失败: %s", resp.Message)

	var br BorrowerData
	require.NoError(t, json.Unmarshal(resp.Data, &br))
	assert.Equal(t, email, br.Email)
	assert.NotEmpty(t, br.RegisteredDate, "注册日期应缺省为当天")

	// 更新姓名
	resp = PutJSON(t, BaseURL+"/borrowers/"+email, map[string]string{
		"name": "改名后的借阅人",
	})
	require.Equal(t, 0, resp.Code, "更新借阅人失败: %s", resp.Message)

	resp = GetJSON(t, BaseURL+"/borrowers/"+email)
	require.Equal(t, 0, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &br))
	assert.Equal(t, "改名后的借阅人", br.Name)

	// 邮箱重复注册被拒绝
	resp = PostJSON(t, BaseURL+"/borrowers", map[string]string{
		"name":  "测试借阅人",
		"email": email,
	})
	assert.Equal(t, 40003, resp.Code, "重复邮箱应被拒绝")

	// 删除
	resp = DeleteJSON(t, BaseURL+"/borrowers/"+email)
	require.Equal(t, 0, resp.Code, "删除借阅人失败: %s", resp.Message)

	resp = GetJSON(t, BaseURL+"/borrowers/"+email)
	assert.Equal(t, 40402, resp.Code, "删除后查询应返回借阅人不存在")
}
