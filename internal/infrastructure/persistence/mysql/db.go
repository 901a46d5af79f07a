package mysql

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/marketplace/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 1. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 2. 开发环境打印SQL，生产环境关闭
// 3. database.auto_migrate开启时自动迁移表结构
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	// 最大打开连接数（建议：CPU核数 * 2 + 磁盘数量）
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	// 防止数据库主动断开空闲连接
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}
	log.Info("database connected", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

	// 生产环境应使用版本化的迁移脚本
	if cfg.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn("close database failed", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

// Migrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CategoryModel{},
		&ProductModel{},
		&VariationModel{},
		&ReviewModel{},
		&MessageModel{},
	)
}

// UserModel GORM用户模型
// domain/user/entity.go是领域实体，不依赖GORM，Repository负责两者转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	FirstName string         `gorm:"size:50;not null;comment:名"`
	LastName  string         `gorm:"size:50;not null;default:'';comment:姓"`
	IsStaff   bool           `gorm:"not null;comment:是否为运营人员"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

func (UserModel) TableName() string {
	return "users"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:50;not null;comment:分类名称"`
	Slug        string `gorm:"uniqueIndex;size:100;not null;comment:分类Slug"`
	Description string `gorm:"size:255;comment:分类描述"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel GORM商品模型
// 1. 名称和Slug都有唯一索引
// 2. 折扣价可空，使用decimal存储
// 3. (status, is_approved)复合索引服务公开列表查询
// 4. 商品物理删除，规格和评价在同一事务中删除
type ProductModel struct {
	ID            uint                `gorm:"primaryKey"`
	OwnerID       *uint               `gorm:"index;comment:所有者用户ID（后台创建为空）"`
	Name          string              `gorm:"uniqueIndex;size:200;not null;comment:商品名称"`
	Slug          string              `gorm:"uniqueIndex;size:200;not null;comment:商品Slug"`
	Description   string              `gorm:"size:1000;comment:商品描述"`
	Price         int64               `gorm:"not null;comment:价格"`
	DiscountPrice decimal.NullDecimal `gorm:"type:decimal(12,2);comment:折扣价"`
	ImageURL      string              `gorm:"size:500;not null;comment:商品图片"`
	Stock         int                 `gorm:"not null;comment:库存"`
	Status        bool                `gorm:"index:idx_listed;not null;comment:是否上架"`
	IsApproved    bool                `gorm:"index:idx_listed;not null;comment:是否审核通过"`
	CategoryID    uint                `gorm:"index;not null;comment:分类ID"`
	Category      CategoryModel       `gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time           `gorm:"index;comment:创建时间"`
	UpdatedAt     time.Time           `gorm:"comment:更新时间"`
}

func (ProductModel) TableName() string {
	return "products"
}

// VariationModel GORM商品规格模型
type VariationModel struct {
	ID        uint      `gorm:"primaryKey"`
	ProductID uint      `gorm:"index:idx_variation_lookup;not null;comment:商品ID"`
	Category  string    `gorm:"index:idx_variation_lookup;size:100;not null;comment:规格类型(color/size)"`
	Value     string    `gorm:"size:100;not null;comment:规格值"`
	IsActive  bool      `gorm:"not null;comment:是否启用"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

func (VariationModel) TableName() string {
	return "variations"
}

// ReviewModel GORM评价模型
// (user_id, product_id)唯一索引保证同一用户对同一商品只有一条评价
type ReviewModel struct {
	ID        uint      `gorm:"primaryKey"`
	ProductID uint      `gorm:"uniqueIndex:idx_review_user_product,priority:2;index;not null;comment:商品ID"`
	UserID    uint      `gorm:"uniqueIndex:idx_review_user_product,priority:1;not null;comment:评价人ID"`
	Text      string    `gorm:"size:1000;comment:评价内容"`
	ImageURL  string    `gorm:"size:500;comment:评价图片"`
	Rating    int       `gorm:"type:tinyint;not null;comment:评分(1-5)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

// MessageModel GORM站内消息模型
type MessageModel struct {
	ID         uint      `gorm:"primaryKey"`
	SenderID   uint      `gorm:"index;not null;comment:发送方"`
	ReceiverID uint      `gorm:"index;not null;comment:接收方"`
	ProductID  *uint     `gorm:"comment:关联商品"`
	Subject    string    `gorm:"size:120;not null;comment:主题"`
	Body       string    `gorm:"type:text;not null;comment:内容"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
}

func (MessageModel) TableName() string {
	return "contact_messages"
}
