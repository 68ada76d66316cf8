package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	// Ramesh Kumar，Cutting 每件 5，完成 200 件
	assert.Equal(t, 1000.0, Total(200, 5))
	assert.Equal(t, 0.0, Total(0, 5))
	assert.Equal(t, 0.0, Total(150, 0))
	// 0.1 × 3 不應出現浮點誤差
	assert.Equal(t, 0.3, Total(3, 0.1))
	assert.Equal(t, 33.75, Total(45, 0.75))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.Equal(t, 0.0, Sum())
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 20.0, Percentage(200, 1000))
	assert.Equal(t, 100.0, Percentage(1200, 1000))
	assert.Equal(t, 0.0, Percentage(10, 0))
	assert.Equal(t, 33.33, Percentage(1, 3))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean())
	assert.Equal(t, 50.0, Mean(100, 0))
}
