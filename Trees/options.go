package Trees

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "recordtree")

// Visitor is called with every record passed over by an in-order search
// before it reaches its target.
type Visitor func(Record)

type config struct {
	visit Visitor
	stCap uint
}

type Option func(*config)

// WithVisitor makes Find report the records it walks over to v.
func WithVisitor(v Visitor) Option {
	return func(c *config) {
		c.visit = v
	}
}

// WithStackCap sets the initial capacity of the stacks used in traversals.
// A good value is the expected height of the tree.
func WithStackCap(n uint) Option {
	return func(c *config) {
		c.stCap = n
	}
}

// LogVisitor returns a Visitor that logs each visited record at debug level.
// A nil logger uses the package logger.
func LogVisitor(logger logrus.FieldLogger) Visitor {
	if logger == nil {
		logger = log
	}
	return func(r Record) {
		logger.WithFields(logrus.Fields{
			"id":   r.ID,
			"name": r.Name,
		}).Debug("visited")
	}
}

// NameVisitor returns a Visitor appending each visited name to names.
func NameVisitor(names *[]string) Visitor {
	return func(r Record) {
		*names = append(*names, r.Name)
	}
}
