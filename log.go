package foil

import "github.com/sirupsen/logrus"

// Log is the sink for user-visible warnings and errors, such as duplicate
// coordinates skipped during a load or a missing airfoil file. It defaults
// to the logrus standard logger; applications may replace it.
var Log logrus.FieldLogger = logrus.StandardLogger()
