package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client は外部API呼び出し用のHTTPクライアント。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL は接続先APIのベースURL。
	baseURL string
}

// Response は外部APIのレスポンス。
// ステータスコードと生のボディを保持し、呼び出し元がそのまま転送できるようにする。
type Response struct {
	// StatusCode はHTTPステータスコード。
	StatusCode int
	// Body はレスポンスボディ。
	Body []byte
}

// New は新しい外部API用HTTPクライアントを生成する。
// baseURLには接続先APIのベースURL（例: "https://api.github.com"）を指定する。
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// Get は指定パスにGETリクエストを送信し、ステータスコードと生のボディを返す。
// headerに指定したヘッダーをリクエストに付与する。
// 非2xxレスポンスはエラーにせず、呼び出し元がステータスコードで判断する。
func (c *Client) Get(ctx context.Context, path string, header http.Header) (*Response, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストの送信に失敗: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスボディの読み取りに失敗: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
