// Package adapters はtradesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"trade_backend/internal/feature/trades/domain/entity"
	"trade_backend/internal/feature/trades/usecase"
)

// thesisMySQL はThesisRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type thesisMySQL struct {
	db *gorm.DB
}

// thesisMySQLがThesisRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ThesisRepository = (*thesisMySQL)(nil)

// NewThesisMySQL は指定されたgorm.DB接続でthesisMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewThesisMySQL(db *gorm.DB) *thesisMySQL {
	return &thesisMySQL{db: db}
}

// Create はトレード仮説レコードをデータベースに追加します。
// 成功時、thesis.IDには採番されたIDが設定されます。
func (r *thesisMySQL) Create(ctx context.Context, thesis *entity.TradeThesis) error {
	return r.db.WithContext(ctx).Create(thesis).Error
}

// FindByUserID は指定ユーザーのトレード仮説を作成日時の降順で取得します。
// 他ユーザーのレコードは決して含まれません。
func (r *thesisMySQL) FindByUserID(ctx context.Context, userID uint) ([]entity.TradeThesis, error) {
	var theses []entity.TradeThesis
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&theses).Error; err != nil {
		return nil, err
	}
	return theses, nil
}
