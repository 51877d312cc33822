package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/pizzeria/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（生产环境应使用版本化迁移工具）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CustomerModel{},
		&CategoryModel{},
		&IngredientModel{},
		&PizzaModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Username  string         `gorm:"size:50;not null;comment:用户名"`
	FirstName string         `gorm:"size:50;comment:名"`
	LastName  string         `gorm:"size:50;comment:姓"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// CustomerModel GORM顾客模型
// Phone有唯一索引:同一电话号码只能注册一个顾客
type CustomerModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex;not null;comment:用户身份ID"`
	Phone     string    `gorm:"uniqueIndex;size:20;not null;comment:电话号码"`
	Address   string    `gorm:"size:150;comment:默认地址"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CustomerModel) TableName() string {
	return "customers"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:255;not null;comment:分类名"`
	Slug      string    `gorm:"uniqueIndex;size:255;not null;comment:URL标识"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// IngredientModel GORM配料模型
type IngredientModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;not null;comment:配料名"`
}

// TableName 指定表名
func (IngredientModel) TableName() string {
	return "ingredients"
}

// PizzaModel GORM披萨模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. 与配料是多对多关系(pizza_ingredients连接表)
// 3. 购物车子系统只读取Price与InStock
type PizzaModel struct {
	ID          uint              `gorm:"primaryKey"`
	Name        string            `gorm:"uniqueIndex;size:255;not null;comment:名称"`
	Slug        string            `gorm:"uniqueIndex;size:255;not null;comment:URL标识"`
	Price       int64             `gorm:"index:idx_list;not null;comment:价格(分)"`
	CategoryID  uint              `gorm:"index;not null;comment:分类ID"`
	InStock     bool              `gorm:"default:true;comment:是否在售"`
	Description string            `gorm:"type:text;comment:描述"`
	ImageURL    string            `gorm:"size:500;comment:图片URL"`
	Ingredients []IngredientModel `gorm:"many2many:pizza_ingredients"`
	CreatedAt   time.Time         `gorm:"index:idx_list;comment:创建时间"`
	UpdatedAt   time.Time         `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt    `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (PizzaModel) TableName() string {
	return "pizzas"
}

// CartModel GORM购物车模型
// 设计要点:
// 1. OpenKey是"每顾客至多一个打开购物车"的实现手段:
//    打开期间OpenKey==CustomerID并带唯一索引,结单后置NULL
//    (MySQL唯一索引允许多个NULL,历史购物车互不冲突)
// 2. 并发的find-or-create靠该唯一索引串行化:冲突方重查即可
// 3. TotalQty/TotalPrice是存储的聚合值,必须与条目同事务更新
type CartModel struct {
	ID          uint            `gorm:"primaryKey"`
	CustomerID  uint            `gorm:"index;not null;comment:顾客ID"`
	OpenKey     *uint           `gorm:"uniqueIndex;comment:打开位(打开时=顾客ID,结单后NULL)"`
	TotalQty    int             `gorm:"not null;default:0;comment:条目数量合计"`
	TotalPrice  int64           `gorm:"not null;default:0;comment:金额合计(分)"`
	InOrder     bool            `gorm:"not null;default:false;comment:是否已结单"`
	ForAnonUser bool            `gorm:"not null;default:false;comment:匿名购物车(预留)"`
	Items       []CartItemModel `gorm:"foreignKey:CartID"`
	CreatedAt   time.Time       `gorm:"comment:创建时间"`
	UpdatedAt   time.Time       `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel GORM购物车条目模型
// (cart_id, pizza_id)唯一索引:同一购物车中同一披萨至多一条
type CartItemModel struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID uint      `gorm:"index;not null;comment:顾客ID"`
	CartID     uint      `gorm:"uniqueIndex:idx_cart_pizza;not null;comment:购物车ID"`
	PizzaID    uint      `gorm:"uniqueIndex:idx_cart_pizza;not null;comment:披萨ID"`
	Qty        int       `gorm:"not null;default:1;comment:数量"`
	FinalPrice int64     `gorm:"not null;default:0;comment:小计(分)"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel GORM订单模型
// 设计要点:
// 1. OrderNo有唯一索引(业务主键)
// 2. CartID有唯一索引:一个购物车至多产生一个订单
// 3. 联系方式是结单时的快照
type OrderModel struct {
	ID            uint      `gorm:"primaryKey"`
	OrderNo       string    `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	CustomerID    uint      `gorm:"index;not null;comment:顾客ID"`
	CartID        uint      `gorm:"uniqueIndex;not null;comment:来源购物车ID"`
	FirstName     string    `gorm:"size:255;not null;comment:收货人名"`
	LastName      string    `gorm:"size:255;not null;comment:收货人姓"`
	Phone         string    `gorm:"size:255;not null;comment:联系电话"`
	Address       string    `gorm:"size:255;comment:地址"`
	Status        int       `gorm:"index;type:tinyint;default:1;comment:状态(1新2制作中3待取4完成)"`
	Delivery      string    `gorm:"size:100;not null;comment:配送方式(delivery/pickup)"`
	Comment       string    `gorm:"type:text;comment:备注"`
	OrderDateTime time.Time `gorm:"not null;comment:期望送达/自取时间"`
	CreatedAt     time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt     time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}
