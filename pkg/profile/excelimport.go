// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package profile

import (
	"github.com/walteh/srcpatch/pkg/rule"
)

// ExcelImport is the name of the profile that wires the Excel import flow
// into the database screens.
const ExcelImport = "excel-import"

func init() {
	Register(ExcelImport, NewExcelImport)
}

const (
	sheetScreenImport = "import 'package:costealoo/screens/sheets/new_sheet_screen.dart';"
	excelHelperImport = "import 'package:costealoo/utils/excel_import_helper.dart';"

	// end of _createSheetFromDatabase: signature, body, closing brace and
	// the trailing newlines
	createSheetMethodEnd = `(  void _createSheetFromDatabase\(Map<String, dynamic> database\) \{[^\}]*\}[^\}]*\}[\r\n]+)`

	importFromExcelMarker = "Future<void> _importFromExcel()"

	importFromExcelMethod = `
  Future<void> _importFromExcel() async {
    try {
      final products = await ExcelImportHelper.importProductsFromExcel();
      
      if (products == null) return; // Usuario canceló
      
      final user = AuthService().currentUser;
      final companyName = (user?.nombre != null && user!.nombre.isNotEmpty)
          ? user.nombre
          : 'Mi Empresa';
      
      final dbResult = await Navigator.push(
        context,
        MaterialPageRoute(
          builder: (context) => DatabaseScreen(
            initialName: companyName,
            preLoadedProducts: products,
          ),
        ),
      );
      
      if (dbResult != null && dbResult is Map && dbResult['published'] == true) {
        _loadDatabases();
      }
      
      if (!mounted) return;
      ScaffoldMessenger.of(context).showSnackBar(
        SnackBar(
          content: Text('${products.length} productos importados correctamente'),
          backgroundColor: Colors.green,
        ),
      );
    } catch (e) {
      if (!mounted) return;
      ScaffoldMessenger.of(context).showSnackBar(
        SnackBar(
          content: Text('Error al importar archivo: $e'),
          backgroundColor: Colors.red,
        ),
      );
    }
  }
`

	exportButtonComment = "// Botón Exportar de archivo"
	importButtonComment = "// Botón Importar archivo"

	comingSoonButton = `onPressed: () {
                            // TODO: Implementar importar desde archivo
                            ScaffoldMessenger.of(context).showSnackBar(
                              const SnackBar(
                                content: Text(
                                  'Importar desde archivo - Próximamente',
                                ),
                              ),
                            );
                          },
                          icon: const Icon(Icons.upload_file),
                          label: const Text('Exportar de archivo'),`

	importButton = `onPressed: _importFromExcel,
                          icon: const Icon(Icons.upload_file),
                          label: const Text('Importar archivo'),`

	plainConstructor = `class DatabaseScreen extends StatefulWidget {
  final String initialName;

  const DatabaseScreen({super.key, this.initialName = 'Nueva Base de Datos'});`

	preloadedConstructor = `class DatabaseScreen extends StatefulWidget {
  final String initialName;
  final List<Map<String, dynamic>>? preLoadedProducts;

  const DatabaseScreen({
    super.key,
    this.initialName = 'Nueva Base de Datos',
    this.preLoadedProducts,
  });`

	emptyRowsInitState = `  @override
  void initState() {
    super.initState();
    // Iniciar con 10 filas vacías
    for (int i = 0; i < 10; i++) {
      _addNewRow();
    }
  }`

	preloadedInitState = `  @override
  void initState() {
    super.initState();
    // Si hay productos pre-cargados, cargarlos
    if (widget.preLoadedProducts != null && widget.preLoadedProducts!.isNotEmpty) {
      for (var product in widget.preLoadedProducts!) {
        productRows.add({
          'id': TextEditingController(text: product['id']?.toString() ?? ''),
          'name': TextEditingController(text: product['name']?.toString() ?? ''),
          'price': TextEditingController(text: product['price']?.toString() ?? ''),
          'unit': TextEditingController(text: product['unit']?.toString() ?? ''),
        });
      }
    } else {
      // Iniciar con 10 filas vacías
      for (int i = 0; i < 10; i++) {
        _addNewRow();
      }
    }
  }`
)

// DefaultRowCount is the number of empty rows the database screen starts
// with when no products are supplied.
const DefaultRowCount = 10

// 🏭 NewExcelImport builds the excel-import profile
func NewExcelImport() *Profile {
	return &Profile{
		Name:        ExcelImport,
		Description: "Import products from an Excel file into a new database",
		Targets: []Target{
			{
				Name:  "database_selection_screen",
				Path:  "lib/screens/database/database_selection_screen.dart",
				Match: "lib/**/database_selection_screen.dart",
				Rules: []rule.Rule{
					&rule.InsertAfter{
						RuleName: "import-excel-helper",
						Summary:  "import excel_import_helper.dart",
						Anchor:   sheetScreenImport,
						Text:     excelHelperImport,
					},
					&rule.InsertAfterPattern{
						RuleName: "import-from-excel-method",
						Summary:  "add _importFromExcel handler",
						Pattern:  createSheetMethodEnd,
						Text:     importFromExcelMethod + "\n",
						Marker:   importFromExcelMarker,
					},
					&rule.Replace{
						RuleName: "import-button-comment",
						Summary:  "rename import button comment",
						Old:      exportButtonComment,
						New:      importButtonComment,
					},
					&rule.Replace{
						RuleName: "import-button-wiring",
						Summary:  "wire import button to _importFromExcel",
						Old:      comingSoonButton,
						New:      importButton,
					},
				},
			},
			{
				Name:  "database_screen",
				Path:  "lib/screens/database/database_screen.dart",
				Match: "lib/**/database_screen.dart",
				Rules: []rule.Rule{
					&rule.Replace{
						RuleName: "preloaded-products-constructor",
						Summary:  "add preLoadedProducts to DatabaseScreen",
						Old:      plainConstructor,
						New:      preloadedConstructor,
					},
					&rule.Replace{
						RuleName: "preloaded-products-init-state",
						Summary:  "load preLoadedProducts in initState",
						Old:      emptyRowsInitState,
						New:      preloadedInitState,
					},
				},
			},
		},
	}
}
