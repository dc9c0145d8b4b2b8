package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 这些测试需要一个已启动的服务实例(包括MySQL/Redis)
// 服务未启动时测试会被跳过,不会失败

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查URL
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// RequireServer 检查服务是否可达,不可达时跳过测试
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("服务未启动,跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// BookData 图书响应数据
type BookData struct {
	ID                uint   `json:"id"`
	ISBN              string `json:"isbn"`
	Title             string `json:"title"`
	Author            string `json:"author"`
	ShelfLocation     string `json:"shelf_location"`
	AvailableQuantity int    `json:"available_quantity"`
}

// BorrowerData 借阅人响应数据
type BorrowerData struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	RegisteredDate string `json:"registered_date"`
}

// LoanData 借阅记录响应数据
type LoanData struct {
	ID           uint    `json:"id"`
	BookID       uint    `json:"book_id"`
	BorrowerID   uint    `json:"borrower_id"`
	BorrowedDate string  `json:"borrowed_date"`
	DueDate      string  `json:"due_date"`
	ReturnedDate *string `json:"returned_date"`
	Book         *struct {
		ISBN  string `json:"isbn"`
		Title string `json:"title"`
	} `json:"book"`
}

// doJSON 发送请求并解析JSON响应
func doJSON(t *testing.T, method, url string, data interface{}) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, http.MethodPost, url, data)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string) *Response {
	return doJSON(t, http.MethodGet, url, nil)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, http.MethodPut, url, data)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string) *Response {
	return doJSON(t, http.MethodDelete, url, nil)
}

// GenerateTestEmail 生成唯一的测试邮箱
// 使用纳秒时间戳确保测试重复运行时邮箱不冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// GenerateTestISBN 生成唯一的测试ISBN(13位数字)
func GenerateTestISBN() string {
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("978%010d", timestamp%10000000000)
}

// AddTestBook 录入测试图书并返回其ISBN
func AddTestBook(t *testing.T, title string, quantity int) string {
	t.Helper()
	isbn := GenerateTestISBN()

	resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"isbn":               isbn,
		"title":              title,
		"author":             "测试作者",
		"shelf_location":     "T-0-1",
		"available_quantity": quantity,
	})
	require.Equal(t, 0, resp.Code, "录入图书失败: %s", resp.Message)

	return isbn
}

// RegisterTestBorrower 注册测试借阅人并返回其邮箱
func RegisterTestBorrower(t *testing.T, prefix string) string {
	t.Helper()
	email := GenerateTestEmail(prefix)

	resp := PostJSON(t, BaseURL+"/borrowers", map[string]string{
		"name":  "测试借阅人",
		"email": email,
	})
	require.Equal(t, 0, resp.Code, "注册借阅人失败: %s", resp.Message)

	return email
}

// FutureDate 返回days天后的日期字符串(2006-01-02)
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// PastDate 返回days天前的日期字符串(2006-01-02)
func PastDate(days int) string {
	return time.Now().AddDate(0, 0, -days).Format("2006-01-02")
}
