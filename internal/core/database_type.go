package core

// ─── Database Types ────────────────────────────────────────────────────────────

type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB / Postgres 共用資料表名稱 ─────────────────────────────────────────
const (
	MongoDBDefault = "mohil"
)

const (
	CollectionWorkers              MongoCollection = "workers"
	CollectionEmployees            MongoCollection = "employees"
	CollectionProducts             MongoCollection = "products"
	CollectionOperations           MongoCollection = "operations"
	CollectionProductions          MongoCollection = "production_cutting"
	CollectionProductionOperations MongoCollection = "production_operations"
	CollectionWorkerSalaries       MongoCollection = "worker_salaries"
	CollectionEmployeeSalaries     MongoCollection = "employee_salaries"
	CollectionUsers                MongoCollection = "users"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyServerName  RedisKey = "mohil"       // 伺服器名稱
	RedisKeyLoginLimit  RedisKey = "login_limit" // 登入失敗限流
	RedisKeyIdempotency RedisKey = "idem"        // 重複送出保護
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
)
