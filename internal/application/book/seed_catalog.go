package book

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// SeedCatalogUseCase 启动时初始化图书数据
// 只在表为空时写入;计数和写入在同一个事务中执行
type SeedCatalogUseCase struct {
	bookService book.Service
	tx          book.Transactor
	log         *zap.Logger
}

// NewSeedCatalogUseCase 创建初始化用例
func NewSeedCatalogUseCase(bookService book.Service, tx book.Transactor, log *zap.Logger) *SeedCatalogUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SeedCatalogUseCase{bookService: bookService, tx: tx, log: log}
}

// Execute 写入books,返回写入条数(非空表返回0)
func (uc *SeedCatalogUseCase) Execute(ctx context.Context, books []*book.Book) (int, error) {
	var inserted int
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		n, err := uc.bookService.SeedIfEmpty(ctx, books)
		inserted = n
		return err
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		uc.log.Info("初始化图书数据完成", zap.Int("count", inserted))
	} else {
		uc.log.Debug("图书表非空,跳过初始化")
	}
	return inserted, nil
}

// DefaultCatalog 默认示例数据
// 每次调用返回新的切片(写入时会回填ID)
func DefaultCatalog() []*book.Book {
	price := decimal.RequireFromString
	return []*book.Book{
		book.NewBook("Clean Code", "Robert C. Martin", "Prentice Hall", "978-0132350884", "Software Engineering", "QA76.76.D47", 464, price("39.99")),
		book.NewBook("Design Patterns", "Erich Gamma", "Addison-Wesley", "978-0201633610", "Software Engineering", "QA76.64", 395, price("54.99")),
		book.NewBook("The Pragmatic Programmer", "Andrew Hunt", "Addison-Wesley", "978-0201616224", "Software Engineering", "", 352, price("45.00")),
		book.NewBook("Refactoring", "Martin Fowler", "Addison-Wesley", "978-0134757599", "Software Engineering", "QA76.76.R42", 448, price("39.99")),
		book.NewBook("Domain-Driven Design", "Eric Evans", "Addison-Wesley", "978-0321125217", "Software Architecture", "", 560, price("62.50")),
		book.NewBook("The Go Programming Language", "Alan A. A. Donovan", "Addison-Wesley", "978-0134190440", "Programming Languages", "QA76.73.G63", 380, price("34.99")),
		book.NewBook("Structure and Interpretation of Computer Programs", "Harold Abelson", "MIT Press", "978-0262510875", "Computer Science", "QA76.6", 657, price("55.00")),
		book.NewBook("Introduction to Algorithms", "Thomas H. Cormen", "MIT Press", "978-0262046305", "Computer Science", "QA76.6", 1312, price("120.50")),
		book.NewBook("Designing Data-Intensive Applications", "Martin Kleppmann", "O'Reilly Media", "978-1449373320", "Software Architecture", "", 616, price("44.99")),
		book.NewBook("The Mythical Man-Month", "Frederick P. Brooks Jr.", "Addison-Wesley", "978-0201835953", "Project Management", "QA76.758", 336, price("9.99")),
		book.NewBook("Code Complete", "Steve McConnell", "Microsoft Press", "978-0735619678", "Software Engineering", "QA76.76.D47", 960, price("49.99")),
		book.NewBook("Working Effectively with Legacy Code", "Michael Feathers", "Prentice Hall", "978-0131177055", "Software Engineering", "", 456, price("47.50")),
	}
}
