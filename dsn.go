package easydb

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql" // also registers the mysql driver
)

const mysqlCollation = "utf8mb4_general_ci"

// DSN renders the data source name for the configured driver.
func (c Config) DSN() (dsn string, err error) {
	switch c.Driver {
	case MySQLDriver:
		dsn = c.mysqlDSN()
	case SQLiteDriver:
		// See: https://pkg.go.dev/modernc.org/sqlite#Driver.Open
		dsn = fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)",
			c.Name,
			c.timeout().Milliseconds(),
		)
	case SQLite3Driver:
		// See: https://github.com/mattn/go-sqlite3#connection-string
		dsn = fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on",
			c.Name,
			c.timeout().Milliseconds(),
		)
	default:
		err = NewErr(ErrUnsupportedDriver, "driver", c.Driver)
	}
	return dsn, err
}

func (c Config) mysqlDSN() string {
	port := c.Port
	if port == 0 {
		port = DefaultMySQLPort
	}
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Pass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(port))
	mc.DBName = c.Name
	mc.Collation = mysqlCollation
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Timeout = c.timeout()
	return mc.FormatDSN()
}
