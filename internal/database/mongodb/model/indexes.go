// Package model MongoDB 各集合的索引定義，文件結構共用 internal/database/model
package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var WorkerIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "workerId", Value: 1}},
		Options: options.Index().SetName("uniq_workerId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_createdAt"),
	},
}

var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}},
		Options: options.Index().SetName("uniq_employeeId").SetUnique(true),
	},
}

var ProductIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "productId", Value: 1}},
		Options: options.Index().SetName("uniq_productId").SetUnique(true),
	},
}

var OperationIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "productId", Value: 1}, {Key: "operationId", Value: 1}},
		Options: options.Index().SetName("uniq_productId_operationId").SetUnique(true),
	},
}

var ProductionIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "productionId", Value: 1}},
		Options: options.Index().SetName("uniq_productionId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_createdAt"),
	},
}

var AssignmentIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "workerId", Value: 1}, {Key: "productionId", Value: 1}, {Key: "operationId", Value: 1}},
		Options: options.Index().SetName("uniq_workerId_productionId_operationId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_date"),
	},
}

var WorkerSalaryIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "workerId", Value: 1}, {Key: "productionId", Value: 1}, {Key: "operationId", Value: 1}},
		Options: options.Index().SetName("uniq_workerId_productionId_operationId").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "paid", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_paid_date"),
	},
}

var EmployeeSalaryIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "month", Value: 1}},
		Options: options.Index().SetName("uniq_employeeId_month").SetUnique(true),
	},
}

var UserIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "role", Value: 1}},
		Options: options.Index().SetName("idx_role"),
	},
}
