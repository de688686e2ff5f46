package api

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apidb "github.com/nao1215/devconnect/internal/api/db"
	"github.com/nao1215/devconnect/pkg/middleware"
)

// upsertProfileRequest はプロフィール作成・更新リクエストのJSON構造。
type upsertProfileRequest struct {
	// Company は所属企業。
	Company string `json:"company"`
	// Website は個人サイトのURL。
	Website string `json:"website"`
	// Location は所在地。
	Location string `json:"location"`
	// Status は職業上のステータス（必須）。
	Status string `json:"status"`
	// Bio は自己紹介。
	Bio string `json:"bio"`
	// GithubUsername はGitHubのユーザー名。
	GithubUsername string `json:"githubusername"`
	// Skills はカンマ区切りのスキル一覧（必須）。
	Skills string `json:"skills"`
	// 以下はSNSリンク。
	Youtube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Linkedin  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// addExperienceRequest は経歴追加リクエストのJSON構造。
type addExperienceRequest struct {
	// Title は役職名（必須）。
	Title string `json:"title"`
	// Company は企業名（必須）。
	Company string `json:"company"`
	// Location は勤務地。
	Location string `json:"location"`
	// From は開始日（必須）。
	From string `json:"from"`
	// To は終了日。在職中の場合は空。
	To string `json:"to"`
	// Current は在職中かどうか。
	Current bool `json:"current"`
	// Description は業務内容。
	Description string `json:"description"`
}

// addEducationRequest は学歴追加リクエストのJSON構造。
type addEducationRequest struct {
	// School は学校名（必須）。
	School string `json:"school"`
	// Degree は学位（必須）。
	Degree string `json:"degree"`
	// FieldOfStudy は専攻（必須）。
	FieldOfStudy string `json:"fieldofstudy"`
	// From は開始日（必須）。
	From string `json:"from"`
	// To は終了日。在学中の場合は空。
	To string `json:"to"`
	// Current は在学中かどうか。
	Current bool `json:"current"`
	// Description は補足説明。
	Description string `json:"description"`
}

// profileUser はプロフィールに埋め込むユーザーの公開情報。
type profileUser struct {
	// ID はユーザーの一意識別子。
	ID string `json:"id"`
	// Name は表示名。
	Name string `json:"name"`
	// AvatarURL はアバター画像のURL。
	AvatarURL string `json:"avatar_url"`
}

// socialLinks はSNSリンクのJSONレスポンス構造。
type socialLinks struct {
	Youtube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Linkedin  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// experienceResponse は経歴エントリのJSONレスポンス構造。
type experienceResponse struct {
	// ID はエントリの一意識別子。削除時に指定する。
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// educationResponse は学歴エントリのJSONレスポンス構造。
type educationResponse struct {
	// ID はエントリの一意識別子。削除時に指定する。
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// profileResponse はプロフィールのJSONレスポンス構造。
type profileResponse struct {
	// User はプロフィール所有者の公開情報。
	User           profileUser          `json:"user"`
	Company        string               `json:"company"`
	Website        string               `json:"website"`
	Location       string               `json:"location"`
	Status         string               `json:"status"`
	Bio            string               `json:"bio"`
	GithubUsername string               `json:"githubusername"`
	Skills         []string             `json:"skills"`
	Social         socialLinks          `json:"social"`
	Experience     []experienceResponse `json:"experience"`
	Education      []educationResponse  `json:"education"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

// splitSkills はカンマ区切りのスキル一覧を分割し、前後の空白を取り除く。
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// buildProfileResponse はプロフィールとその所有者・経歴・学歴をまとめて
// JSONレスポンスに変換する。
func (s *Server) buildProfileResponse(ctx context.Context, profile apidb.Profile) (profileResponse, error) {
	user, err := s.queries.GetUserByID(ctx, profile.UserID)
	if err != nil {
		return profileResponse{}, err
	}

	experiences, err := s.queries.ListExperiencesByUserID(ctx, profile.UserID)
	if err != nil {
		return profileResponse{}, err
	}
	expResponses := make([]experienceResponse, 0, len(experiences))
	for _, e := range experiences {
		expResponses = append(expResponses, experienceResponse{
			ID:          e.ID,
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			From:        e.FromDate,
			To:          e.ToDate,
			Current:     e.IsCurrent,
			Description: e.Description,
		})
	}

	educations, err := s.queries.ListEducationsByUserID(ctx, profile.UserID)
	if err != nil {
		return profileResponse{}, err
	}
	eduResponses := make([]educationResponse, 0, len(educations))
	for _, e := range educations {
		eduResponses = append(eduResponses, educationResponse{
			ID:           e.ID,
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			From:         e.FromDate,
			To:           e.ToDate,
			Current:      e.IsCurrent,
			Description:  e.Description,
		})
	}

	return profileResponse{
		User: profileUser{
			ID:        user.ID,
			Name:      user.Name,
			AvatarURL: user.AvatarUrl,
		},
		Company:        profile.Company,
		Website:        profile.Website,
		Location:       profile.Location,
		Status:         profile.Status,
		Bio:            profile.Bio,
		GithubUsername: profile.GithubUsername,
		Skills:         splitSkills(profile.Skills),
		Social: socialLinks{
			Youtube:   profile.Youtube,
			Twitter:   profile.Twitter,
			Facebook:  profile.Facebook,
			Linkedin:  profile.Linkedin,
			Instagram: profile.Instagram,
		},
		Experience: expResponses,
		Education:  eduResponses,
		CreatedAt:  profile.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:  profile.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}

// handleGetMyProfile は認証済みユーザー自身のプロフィール取得を処理するハンドラを返す。
func (s *Server) handleGetMyProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		profile, err := s.queries.GetProfileByUserID(c.Request.Context(), userID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "このユーザーのプロフィールはありません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィールの取得に失敗しました"})
			log.Printf("プロフィール取得エラー: %v", err)
			return
		}

		resp, err := s.buildProfileResponse(c.Request.Context(), profile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィールの取得に失敗しました"})
			log.Printf("プロフィール組み立てエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// handleUpsertProfile はプロフィールの作成・更新を処理するハンドラを返す。
// 既存プロフィールがあれば更新、なければ作成する（冪等）。
func (s *Server) handleUpsertProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		var req upsertProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: "リクエストボディが不正です"}}})
			return
		}

		var errs []fieldError
		if strings.TrimSpace(req.Status) == "" {
			errs = append(errs, fieldError{Msg: "ステータスは必須です"})
		}
		if strings.TrimSpace(req.Skills) == "" {
			errs = append(errs, fieldError{Msg: "スキルは必須です"})
		}
		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		// 入力のスキルを正規化してから保存する
		skills := strings.Join(splitSkills(req.Skills), ",")

		if err := s.queries.UpsertProfile(c.Request.Context(), apidb.UpsertProfileParams{
			UserID:         userID,
			Company:        req.Company,
			Website:        req.Website,
			Location:       req.Location,
			Status:         req.Status,
			Bio:            req.Bio,
			GithubUsername: req.GithubUsername,
			Skills:         skills,
			Youtube:        req.Youtube,
			Twitter:        req.Twitter,
			Facebook:       req.Facebook,
			Linkedin:       req.Linkedin,
			Instagram:      req.Instagram,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィールの保存に失敗しました"})
			log.Printf("プロフィール保存エラー: %v", err)
			return
		}

		profile, err := s.queries.GetProfileByUserID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "保存したプロフィールの取得に失敗しました"})
			log.Printf("プロフィール取得エラー: %v", err)
			return
		}

		resp, err := s.buildProfileResponse(c.Request.Context(), profile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィールの取得に失敗しました"})
			log.Printf("プロフィール組み立てエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// handleListProfiles は全プロフィール一覧の取得を処理するハンドラを返す。
// 認証不要の公開エンドポイント。
func (s *Server) handleListProfiles() gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := s.queries.ListProfiles(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィール一覧の取得に失敗しました"})
			log.Printf("プロフィール一覧取得エラー: %v", err)
			return
		}

		responses := make([]profileResponse, 0, len(profiles))
		for _, p := range profiles {
			resp, err := s.buildProfileResponse(c.Request.Context(), p)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィール一覧の取得に失敗しました"})
				log.Printf("プロフィール組み立てエラー: %v", err)
				return
			}
			responses = append(responses, resp)
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleGetProfileByUserID は指定ユーザーのプロフィール取得を処理するハンドラを返す。
// 認証不要の公開エンドポイント。
func (s *Server) handleGetProfileByUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		profile, err := s.queries.GetProfileByUserID(c.Request.Context(), userID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "プロフィールが見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィールの取得に失敗しました"})
			log.Printf("プロフィール取得エラー: %v", err)
			return
		}

		resp, err := s.buildProfileResponse(c.Request.Context(), profile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィールの取得に失敗しました"})
			log.Printf("プロフィール組み立てエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// handleAddExperience は経歴エントリの追加を処理するハンドラを返す。
// 追加されたエントリは一覧の先頭（最新）に位置する。
func (s *Server) handleAddExperience() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		var req addExperienceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: "リクエストボディが不正です"}}})
			return
		}

		var errs []fieldError
		if strings.TrimSpace(req.Title) == "" {
			errs = append(errs, fieldError{Msg: "役職名は必須です"})
		}
		if strings.TrimSpace(req.Company) == "" {
			errs = append(errs, fieldError{Msg: "企業名は必須です"})
		}
		if strings.TrimSpace(req.From) == "" {
			errs = append(errs, fieldError{Msg: "開始日は必須です"})
		}
		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		profile, err := s.queries.GetProfileByUserID(c.Request.Context(), userID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "このユーザーのプロフィールはありません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィールの取得に失敗しました"})
			log.Printf("プロフィール取得エラー: %v", err)
			return
		}

		if err := s.queries.CreateExperience(c.Request.Context(), apidb.CreateExperienceParams{
			ID:          uuid.New().String(),
			UserID:      userID,
			Title:       req.Title,
			Company:     req.Company,
			Location:    req.Location,
			FromDate:    req.From,
			ToDate:      req.To,
			IsCurrent:   req.Current,
			Description: req.Description,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "経歴の追加に失敗しました"})
			log.Printf("経歴追加エラー: %v", err)
			return
		}

		resp, err := s.buildProfileResponse(c.Request.Context(), profile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィールの取得に失敗しました"})
			log.Printf("プロフィール組み立てエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// handleDeleteExperience は経歴エントリの削除を処理するハンドラを返す。
// 指定IDのエントリのみを削除し、他のエントリの順序は変わらない。
func (s *Server) handleDeleteExperience() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		if err := s.queries.DeleteExperience(c.Request.Context(), apidb.DeleteExperienceParams{
			ID:     c.Param("id"),
			UserID: userID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "経歴の削除に失敗しました"})
			log.Printf("経歴削除エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "経歴を削除しました"})
	}
}

// handleAddEducation は学歴エントリの追加を処理するハンドラを返す。
// 追加されたエントリは一覧の先頭（最新）に位置する。
func (s *Server) handleAddEducation() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		var req addEducationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: "リクエストボディが不正です"}}})
			return
		}

		var errs []fieldError
		if strings.TrimSpace(req.School) == "" {
			errs = append(errs, fieldError{Msg: "学校名は必須です"})
		}
		if strings.TrimSpace(req.Degree) == "" {
			errs = append(errs, fieldError{Msg: "学位は必須です"})
		}
		if strings.TrimSpace(req.FieldOfStudy) == "" {
			errs = append(errs, fieldError{Msg: "専攻は必須です"})
		}
		if strings.TrimSpace(req.From) == "" {
			errs = append(errs, fieldError{Msg: "開始日は必須です"})
		}
		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		profile, err := s.queries.GetProfileByUserID(c.Request.Context(), userID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "このユーザーのプロフィールはありません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィールの取得に失敗しました"})
			log.Printf("プロフィール取得エラー: %v", err)
			return
		}

		if err := s.queries.CreateEducation(c.Request.Context(), apidb.CreateEducationParams{
			ID:           uuid.New().String(),
			UserID:       userID,
			School:       req.School,
			Degree:       req.Degree,
			FieldOfStudy: req.FieldOfStudy,
			FromDate:     req.From,
			ToDate:       req.To,
			IsCurrent:    req.Current,
			Description:  req.Description,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "学歴の追加に失敗しました"})
			log.Printf("学歴追加エラー: %v", err)
			return
		}

		resp, err := s.buildProfileResponse(c.Request.Context(), profile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "プロフィールの取得に失敗しました"})
			log.Printf("プロフィール組み立てエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// handleDeleteEducation は学歴エントリの削除を処理するハンドラを返す。
func (s *Server) handleDeleteEducation() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		if err := s.queries.DeleteEducation(c.Request.Context(), apidb.DeleteEducationParams{
			ID:     c.Param("id"),
			UserID: userID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "学歴の削除に失敗しました"})
			log.Printf("学歴削除エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "学歴を削除しました"})
	}
}

// handleDeleteAccount はアカウント削除を処理するハンドラを返す。
// プロフィール（経歴・学歴を含む）、投稿（いいね・コメントを含む）、
// ユーザー本体を順に削除する。
func (s *Server) handleDeleteAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		ctx := c.Request.Context()

		// 投稿とその関連レコードを削除する
		if err := s.queries.DeletePostLikesByPostOwner(ctx, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの削除に失敗しました"})
			log.Printf("いいね削除エラー: %v", err)
			return
		}
		if err := s.queries.DeletePostCommentsByPostOwner(ctx, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの削除に失敗しました"})
			log.Printf("コメント削除エラー: %v", err)
			return
		}
		if err := s.queries.DeletePostsByUserID(ctx, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの削除に失敗しました"})
			log.Printf("投稿削除エラー: %v", err)
			return
		}

		// プロフィールとその関連レコードを削除する
		if err := s.queries.DeleteExperiencesByUserID(ctx, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの削除に失敗しました"})
			log.Printf("経歴削除エラー: %v", err)
			return
		}
		if err := s.queries.DeleteEducationsByUserID(ctx, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの削除に失敗しました"})
			log.Printf("学歴削除エラー: %v", err)
			return
		}
		if err := s.queries.DeleteProfile(ctx, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの削除に失敗しました"})
			log.Printf("プロフィール削除エラー: %v", err)
			return
		}

		if err := s.queries.DeleteUser(ctx, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの削除に失敗しました"})
			log.Printf("ユーザー削除エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "ユーザーを削除しました"})
	}
}
