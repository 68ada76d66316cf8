package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
type TraceSpanName string

const (
	SpanHttpRequest            TraceSpanName = "http_request"
	SpanLoggerMiddleware       TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware     TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware         TraceSpanName = "cors_middleware"
	SpanResponseMiddleware     TraceSpanName = "response_middleware"
	SpanAuthMiddleware         TraceSpanName = "auth_middleware"
	SpanRoleMiddleware         TraceSpanName = "role_middleware"
	SpanIdempotencyMiddleware  TraceSpanName = "idempotency_middleware"
	SpanSalaryRecalculationJob TraceSpanName = "salary_recalculation_job"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal        MetricName = "requests_total"
	MetricHttpRequestDuration      MetricName = "request_duration_seconds"
	MetricResponseSuccessTotal     MetricName = "response_success_total"
	MetricResponseFailTotal        MetricName = "response_fail_total"
	MetricAssignmentsRecordedTotal MetricName = "assignments_recorded_total"
	MetricSalaryAccruedAmountTotal MetricName = "salary_accrued_amount_total"
	MetricLoginRateLimitedTotal    MetricName = "login_rate_limited_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint  MetricLabelName = "endpoint"
	MetricLabelStatus    MetricLabelName = "status"
	MetricLabelReason    MetricLabelName = "reason"
	MetricLabelOperation MetricLabelName = "operation"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TraceAuthMiddlewareMeta struct {
	UserID   string `trace:"auth.user_id,omitempty"`
	Role     string `trace:"auth.role,omitempty"`
	ClientIP string `trace:"net.peer.ip,omitempty"`
	Status   string `trace:"auth.status,omitempty"`
}

// 供 Redis 限流 Consume / Reset 使用
type TraceRateLimitMeta struct {
	Subject   string `trace:"rl.subject"`
	Scope     string `trace:"rl.scope"`
	Limit     int64  `trace:"rl.limit_count"`
	WindowSec int64  `trace:"rl.window_sec"`
	Remaining int64  `trace:"rl.remaining,omitempty"`
	TTL       int64  `trace:"rl.ttl_sec,omitempty"`
	Op        string `trace:"rl.op"` // "consume" / "reset" / "get"
}

type TraceIdempotencyMeta struct {
	UserID   string `trace:"idem.user_id"`
	Key      string `trace:"idem.key"`
	Reserved bool   `trace:"idem.reserved"`
	Op       string `trace:"idem.op"`
}

// 供儲存層寫入使用
type TraceStoreMeta struct {
	System        string `trace:"db.system"`
	Collection    string `trace:"db.collection"`
	Op            string `trace:"db.op"`
	ID            string `trace:"db.id,omitempty"`
	Count         int    `trace:"result.count,omitempty"`
	MatchedCount  int64  `trace:"db.matched_count,omitempty"`
	ModifiedCount int64  `trace:"db.modified_count,omitempty"`
}

type TraceAssignmentMeta struct {
	ProductionID string  `trace:"assignment.production_id"`
	OperationID  string  `trace:"assignment.operation_id"`
	WorkerID     string  `trace:"assignment.worker_id"`
	PiecesDone   int64   `trace:"assignment.pieces_done"`
	Rate         float64 `trace:"assignment.rate_per_piece"`
	TotalAmount  float64 `trace:"assignment.total_amount,omitempty"`
	Completed    bool    `trace:"assignment.operation_completed"`
}

type TraceStorageMeta struct {
	Bucket      string `trace:"storage.bucket"`
	Key         string `trace:"storage.key"`
	ContentType string `trace:"storage.content_type,omitempty"`
	Size        int64  `trace:"storage.size,omitempty"`
	Op          string `trace:"storage.op"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}
